package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Config file:  %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print("  (not created yet, using defaults)")
	}
	fmt.Println()
	fmt.Printf("  Ledger file:  %s\n", config.LedgerPath(config.DataDir(cfg)))
	fmt.Println()
	fmt.Printf("  Society:             %s\n", cfg.Society.Name)
	fmt.Printf("  Units:               %d\n", cfg.Society.UnitCount)
	fmt.Printf("  Monthly maintenance: %s%.0f\n", cfg.General.Currency, cfg.Billing.DefaultMaintenance)
	fmt.Printf("  Flat late fee:       %s%.0f\n", cfg.General.Currency, cfg.Billing.LateFee)
	fmt.Printf("  First due day:       %d\n", cfg.Billing.FirstDueDay)
	fmt.Printf("  Final due day:       %d\n", cfg.Billing.FinalDueDay)
	fmt.Println()

	return nil
}
