package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
)

var duesCmd = &cobra.Command{
	Use:   "dues <house>",
	Short: "Show a unit's dues breakdown for the current cycle",
	Args:  cobra.ExactArgs(1),
	RunE:  runDues,
}

func init() {
	rootCmd.AddCommand(duesCmd)
}

func runDues(_ *cobra.Command, args []string) error {
	house, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid house number %q", args[0])
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	u, err := s.led.Unit(house)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  House %d — %s\n", u.ID, u.Name)
	fmt.Printf("  Status: %s", cli.RenderStatus(u.Status))
	if u.LastPaymentDate != nil {
		fmt.Printf("    Last payment: %s", cli.FormatDate(*u.LastPaymentDate))
	}
	fmt.Println()
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Component", "Amount"},
		Rows: [][]string{
			{"Monthly Maintenance", money(s, u.MaintenanceAmount)},
			{"Extra Charges", money(s, u.ExtraCharges)},
			{"Late Fee", money(s, u.LateFee)},
			{"Total Dues", money(s, u.TotalDues)},
		},
	}))
	fmt.Println()

	return nil
}
