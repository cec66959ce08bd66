package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
)

var (
	flagContactName  string
	flagContactPhone string
	flagContactEmail string
)

var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Administer individual units",
}

var unitMaintenanceCmd = &cobra.Command{
	Use:   "set-maintenance <house> <amount>",
	Short: "Change a unit's recurring maintenance charge",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnitMaintenance,
}

var unitSurchargeCmd = &cobra.Command{
	Use:   "surcharge <house> <amount>",
	Short: "Add an ad-hoc extra charge to a unit (cleared on next payment)",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnitSurcharge,
}

var unitContactCmd = &cobra.Command{
	Use:   "contact <house>",
	Short: "Update a unit's occupant details",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitContact,
}

func init() {
	unitContactCmd.Flags().StringVar(&flagContactName, "name", "", "Occupant name")
	unitContactCmd.Flags().StringVar(&flagContactPhone, "phone", "", "Phone number")
	unitContactCmd.Flags().StringVar(&flagContactEmail, "email", "", "Email address")

	unitCmd.AddCommand(unitMaintenanceCmd)
	unitCmd.AddCommand(unitSurchargeCmd)
	unitCmd.AddCommand(unitContactCmd)
	rootCmd.AddCommand(unitCmd)
}

func parseHouse(arg string) (int, error) {
	house, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid house number %q", arg)
	}
	return house, nil
}

func runUnitMaintenance(_ *cobra.Command, args []string) error {
	house, err := parseHouse(args[0])
	if err != nil {
		return err
	}
	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.led.SetMaintenance(house, amount, s.today); err != nil {
		return err
	}
	u, _ := s.led.Unit(house)
	fmt.Printf("  House %d maintenance set to %s (total dues now %s)\n",
		house, money(s, amount), money(s, u.TotalDues))
	return nil
}

func runUnitSurcharge(_ *cobra.Command, args []string) error {
	house, err := parseHouse(args[0])
	if err != nil {
		return err
	}
	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.led.AddExtraCharge(house, amount, s.today); err != nil {
		return err
	}
	u, _ := s.led.Unit(house)
	fmt.Printf("  House %d surcharged %s (total dues now %s)\n",
		house, money(s, amount), money(s, u.TotalDues))
	return nil
}

func runUnitContact(_ *cobra.Command, args []string) error {
	house, err := parseHouse(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.led.SetContact(house, flagContactName, flagContactPhone, flagContactEmail); err != nil {
		return err
	}
	u, _ := s.led.Unit(house)
	fmt.Printf("  House %d: %s / %s / %s\n", house, u.Name, u.Phone, u.Email)
	return nil
}
