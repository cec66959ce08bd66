package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/report"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Manage monthly expenditure budgets",
	RunE:  runExpensesList,
}

var expensesSetCmd = &cobra.Command{
	Use:   "set <category> <amount>",
	Short: "Add or update a budget category",
	Args:  cobra.ExactArgs(2),
	RunE:  runExpensesSet,
}

var expensesRemoveCmd = &cobra.Command{
	Use:   "remove <category>",
	Short: "Remove a budget category",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRemove,
}

var expensesSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the monthly financial summary",
	RunE:  runExpensesSummary,
}

func init() {
	expensesCmd.AddCommand(expensesSetCmd)
	expensesCmd.AddCommand(expensesRemoveCmd)
	expensesCmd.AddCommand(expensesSummaryCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpensesList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cats, err := s.store.Expenditures()
	if err != nil {
		return err
	}

	fmt.Println()
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.Name, money(s, c.Amount)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly Expenditure Budget",
		Headers: []string{"Category", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runExpensesSet(_ *cobra.Command, args []string) error {
	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("budget amount cannot be negative")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.SetExpenditure(args[0], amount); err != nil {
		return err
	}
	fmt.Printf("  %s budgeted at %s/month\n", args[0], money(s, amount))
	return nil
}

func runExpensesRemove(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.RemoveExpenditure(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed category %q\n", args[0])
	return nil
}

func runExpensesSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cats, err := s.store.Expenditures()
	if err != nil {
		return err
	}
	sum := report.Collection(s.led.Units(), cats)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY FINANCIAL SUMMARY"))
	fmt.Println()
	fmt.Printf("  Expected Collection: %s\n", money(s, sum.Expected))
	fmt.Printf("  Actual Collection:   %s\n", money(s, sum.Collected))
	fmt.Printf("  Budgeted Expenses:   %s\n", money(s, sum.BudgetedSpend))
	fmt.Println()

	// Breakdown bars scaled to the largest category.
	maxAmount := 0.0
	labelWidth := 0
	for _, c := range cats {
		v, _ := c.Amount.Float64()
		if v > maxAmount {
			maxAmount = v
		}
		if len(c.Name) > labelWidth {
			labelWidth = len(c.Name)
		}
	}
	for _, c := range cats {
		v, _ := c.Amount.Float64()
		fmt.Printf("%s %s\n", cli.RenderBreakdownBar(c.Name, v, maxAmount, labelWidth, 30), money(s, c.Amount))
	}
	fmt.Println()

	return nil
}
