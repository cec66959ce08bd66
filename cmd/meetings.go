package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/model"
)

var flagMeetingAttendees string

var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "Schedule and list society meetings",
	RunE:  runMeetingsList,
}

var meetingsScheduleCmd = &cobra.Command{
	Use:   "schedule <date> <type> <agenda...>",
	Short: "Schedule a meeting",
	Long:  "Schedule a meeting. Type is one of: " + strings.Join(model.MeetingTypes, ", ") + ".",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runMeetingsSchedule,
}

func init() {
	meetingsScheduleCmd.Flags().StringVar(&flagMeetingAttendees, "attendees", "", "Comma-separated house numbers expected to attend")

	meetingsCmd.AddCommand(meetingsScheduleCmd)
	rootCmd.AddCommand(meetingsCmd)
}

func runMeetingsList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	meetings, err := s.store.Meetings()
	if err != nil {
		return err
	}

	fmt.Println()
	if len(meetings) == 0 {
		fmt.Println("  No meetings scheduled.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(meetings))
	for _, m := range meetings {
		agenda := m.Agenda
		if len(agenda) > 40 {
			agenda = agenda[:37] + "..."
		}
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			cli.FormatDate(m.Date),
			m.Type,
			agenda,
			strconv.Itoa(len(m.Attendees)),
			m.Status,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Meetings",
		Headers: []string{"ID", "Date", "Type", "Agenda", "Invited", "Status"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runMeetingsSchedule(_ *cobra.Command, args []string) error {
	date, err := cli.ParseDate(args[0])
	if err != nil {
		return err
	}
	mtype, err := matchOne(args[1], model.MeetingTypes)
	if err != nil {
		return err
	}

	var attendees []int
	if flagMeetingAttendees != "" {
		for _, part := range strings.Split(flagMeetingAttendees, ",") {
			h, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("invalid attendee house number %q", part)
			}
			attendees = append(attendees, h)
		}
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.store.ScheduleMeeting(model.Meeting{
		Date:      date,
		Type:      mtype,
		Agenda:    strings.Join(args[2:], " "),
		Attendees: attendees,
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Meeting #%d (%s) scheduled for %s\n", id, mtype, cli.FormatDate(date))
	return nil
}
