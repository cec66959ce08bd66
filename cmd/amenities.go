package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/model"
)

var flagAmenityEvery int

var amenitiesCmd = &cobra.Command{
	Use:   "amenities",
	Short: "Manage shared amenities and bookings",
	RunE:  runAmenitiesList,
}

var amenitiesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new amenity",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmenitiesAdd,
}

var amenitiesBookCmd = &cobra.Command{
	Use:   "book <id>",
	Short: "Reserve an amenity",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmenitiesBook,
}

var amenitiesReleaseCmd = &cobra.Command{
	Use:   "release <id>",
	Short: "Mark an amenity available again",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmenitiesRelease,
}

func init() {
	amenitiesAddCmd.Flags().IntVar(&flagAmenityEvery, "every", 30, "Maintenance frequency in days")

	amenitiesCmd.AddCommand(amenitiesAddCmd)
	amenitiesCmd.AddCommand(amenitiesBookCmd)
	amenitiesCmd.AddCommand(amenitiesReleaseCmd)
	rootCmd.AddCommand(amenitiesCmd)
}

func runAmenitiesList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	amenities, err := s.store.Amenities()
	if err != nil {
		return err
	}

	fmt.Println()
	if len(amenities) == 0 {
		fmt.Println("  No amenities registered.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(amenities))
	for _, a := range amenities {
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			a.Name,
			string(a.Status),
			cli.FormatDate(a.LastMaintenance),
			cli.FormatDate(a.NextMaintenance),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Amenities",
		Headers: []string{"ID", "Name", "Status", "Last Maint.", "Next Maint."},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runAmenitiesAdd(_ *cobra.Command, args []string) error {
	if flagAmenityEvery < 1 {
		return fmt.Errorf("maintenance frequency must be at least 1 day")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	last := s.today
	id, err := s.store.AddAmenity(model.Amenity{
		Name:                 args[0],
		Status:               model.AmenityAvailable,
		MaintenanceEveryDays: flagAmenityEvery,
		LastMaintenance:      last,
		NextMaintenance:      last.AddDate(0, 0, flagAmenityEvery),
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Amenity #%d %q added (maintenance every %d days)\n", id, args[0], flagAmenityEvery)
	return nil
}

func runAmenitiesBook(_ *cobra.Command, args []string) error {
	return setAmenityStatus(args[0], model.AmenityReserved, "reserved")
}

func runAmenitiesRelease(_ *cobra.Command, args []string) error {
	return setAmenityStatus(args[0], model.AmenityAvailable, "available")
}

func setAmenityStatus(arg string, status model.AmenityStatus, verb string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid amenity id %q", arg)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.SetAmenityStatus(id, status); err != nil {
		return err
	}
	fmt.Printf("  Amenity #%d %s\n", id, verb)
	return nil
}
