package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/report"
)

var flagStatusAll bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current-cycle collection dashboard",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&flagStatusAll, "all", "a", false, "List every unit, not just outstanding ones")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	units := s.led.Units()
	cats, err := s.store.Expenditures()
	if err != nil {
		return err
	}
	sum := report.Collection(units, cats)

	fmt.Println()
	fmt.Println(cli.RenderTitle(s.cfg.Society.Name + " — COLLECTION STATUS"))
	fmt.Println()

	fmt.Printf("  Cycle: %s    Units: %d    Paid: %d    Unpaid: %d    Late: %d\n",
		cli.FormatMonth(s.today), sum.TotalUnits, sum.PaidUnits, sum.UnpaidUnits, sum.LateUnits)

	ratio := 0.0
	if sum.TotalUnits > 0 {
		ratio = float64(sum.PaidUnits) / float64(sum.TotalUnits)
	}
	fmt.Printf("  Collection: %s %s of %s\n\n",
		cli.RenderBar(ratio, 20, cli.ColorGreen),
		money(s, sum.Collected), money(s, sum.Expected))

	rows := [][]string{}
	for _, u := range units {
		if !flagStatusAll && u.Paid {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(u.ID),
			u.Name,
			cli.RenderStatus(u.Status),
			money(s, u.LateFee),
			money(s, u.TotalDues),
		})
	}

	if len(rows) == 0 {
		fmt.Println("  All units are paid up for this cycle.")
		fmt.Println()
		return nil
	}

	title := "Outstanding Units"
	if flagStatusAll {
		title = "All Units"
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"House", "Name", "Status", "Late Fee", "Total Dues"},
		Rows:    rows,
	}))
	fmt.Println()

	if sum.LateUnits > 0 {
		fmt.Printf("  %s\n\n", cli.WarnStyle.Render(fmt.Sprintf(
			"%d unit(s) past the day-%d due date carry the %s late fee.",
			sum.LateUnits, s.cfg.Billing.FirstDueDay, money(s, s.led.Params().LateFee))))
	}

	return nil
}
