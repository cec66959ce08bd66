package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/report"
)

var flagReportMonth string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the monthly payment report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportMonth, "month", "m", "", "Month to report (YYYY-MM, default current)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	month := time.Date(s.today.Year(), s.today.Month(), 1, 0, 0, 0, 0, time.UTC)
	if flagReportMonth != "" {
		month, err = cli.ParseMonth(flagReportMonth)
		if err != nil {
			return err
		}
	}

	payments, err := s.store.AllPayments()
	if err != nil {
		return err
	}
	rep := report.Monthly(s.led.Units(), payments, month, s.led.Params())

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY PAYMENT REPORT — " + cli.FormatMonth(rep.Month)))
	fmt.Println()

	rows := make([][]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		date := "—"
		if row.PaymentDate != nil {
			date = cli.FormatDate(*row.PaymentDate)
		}
		rows = append(rows, []string{
			strconv.Itoa(row.UnitID),
			row.Name,
			cli.RenderStatus(row.Status),
			date,
			money(s, row.AmountPaid),
			money(s, row.LateFee),
			money(s, row.Total),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"House", "Name", "Status", "Paid On", "Amount", "Late Fee", "Total"},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Printf("  Collected: %s    Late fees: %s    Expected: %s    Rate: %s\n\n",
		money(s, rep.TotalCollected),
		money(s, rep.LateFeesCollected),
		money(s, rep.Expected),
		cli.FormatPercent(rep.CollectionRate))

	return nil
}
