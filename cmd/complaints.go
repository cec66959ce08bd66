package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/model"
)

var complaintsCmd = &cobra.Command{
	Use:   "complaints",
	Short: "File and track complaints",
	RunE:  runComplaintsList,
}

var complaintsFileCmd = &cobra.Command{
	Use:   "file <house> <type> <description...>",
	Short: "Register a new complaint",
	Long:  "Register a new complaint. Type is one of: " + strings.Join(model.ComplaintTypes, ", ") + ".",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runComplaintsFile,
}

var complaintsUpdateCmd = &cobra.Command{
	Use:   "update <id> <status> [resolution...]",
	Short: "Update a complaint's status",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runComplaintsUpdate,
}

func init() {
	complaintsCmd.AddCommand(complaintsFileCmd)
	complaintsCmd.AddCommand(complaintsUpdateCmd)
	rootCmd.AddCommand(complaintsCmd)
}

func runComplaintsList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	complaints, err := s.store.Complaints()
	if err != nil {
		return err
	}

	fmt.Println()
	if len(complaints) == 0 {
		fmt.Println("  No complaints on record.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(complaints))
	for _, c := range complaints {
		desc := c.Description
		if len(desc) > 40 {
			desc = desc[:37] + "..."
		}
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			cli.FormatDate(c.FiledAt),
			strconv.Itoa(c.UnitID),
			c.Type,
			desc,
			string(c.Status),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Complaints",
		Headers: []string{"ID", "Filed", "House", "Type", "Description", "Status"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runComplaintsFile(_ *cobra.Command, args []string) error {
	house, err := parseHouse(args[0])
	if err != nil {
		return err
	}
	ctype, err := matchOne(args[1], model.ComplaintTypes)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.led.Unit(house); err != nil {
		return err
	}

	id, err := s.store.FileComplaint(model.Complaint{
		FiledAt:     s.today,
		UnitID:      house,
		Type:        ctype,
		Description: strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Complaint #%d registered for House %d (%s)\n", id, house, ctype)
	return nil
}

func runComplaintsUpdate(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid complaint id %q", args[0])
	}
	statuses := []string{
		string(model.ComplaintOpen),
		string(model.ComplaintInProgress),
		string(model.ComplaintResolved),
		string(model.ComplaintClosed),
	}
	status, err := matchOne(args[1], statuses)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	resolution := strings.Join(args[2:], " ")
	if err := s.store.UpdateComplaint(id, model.ComplaintStatus(status), resolution); err != nil {
		return err
	}
	fmt.Printf("  Complaint #%d: %s\n", id, status)
	return nil
}

// matchOne resolves a case-insensitive choice against the allowed values.
func matchOne(input string, allowed []string) (string, error) {
	for _, v := range allowed {
		if strings.EqualFold(input, v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid value %q (want one of: %s)", input, strings.Join(allowed, ", "))
}
