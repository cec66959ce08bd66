package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/ledger"
)

var payCmd = &cobra.Command{
	Use:   "pay <house> <amount>",
	Short: "Record a maintenance payment for a unit",
	Args:  cobra.ExactArgs(2),
	RunE:  runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	house, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid house number %q", args[0])
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

	before, err := s.led.Unit(house)
	if err != nil {
		return err
	}

	rec, err := s.led.RecordPayment(house, amount, s.today)
	var perr *ledger.PersistenceError
	switch {
	case errors.As(err, &perr):
		// Payment is applied in memory but did not reach disk.
		fmt.Fprintln(os.Stderr, cli.WarnStyle.Render("  "+perr.Error()))
	case err != nil:
		return err
	}

	after, _ := s.led.Unit(house)

	fmt.Println()
	fmt.Printf("  Payment of %s recorded for House %d (%s) on %s\n",
		money(s, rec.Amount), house, after.Name, cli.FormatDate(rec.PaidAt))
	if !before.LateFee.IsZero() {
		fmt.Printf("  Late fee of %s cleared\n", money(s, before.LateFee))
	}
	if !before.ExtraCharges.IsZero() {
		fmt.Printf("  Extra charges of %s cleared\n", money(s, before.ExtraCharges))
	}
	fmt.Printf("  Status: %s    Dues next cycle: %s\n\n",
		cli.RenderStatus(after.Status), money(s, after.TotalDues))

	return nil
}
