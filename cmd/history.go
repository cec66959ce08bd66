package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history <house>",
	Short: "Show a unit's payment history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
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
	records, err := s.led.History(house)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Payment history for House %d — %s\n\n", u.ID, u.Name)

	if len(records) == 0 {
		fmt.Println("  No payments on record.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			cli.FormatDate(rec.PaidAt),
			money(s, rec.Amount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
