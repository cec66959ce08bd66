package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/config"
	"github.com/societyops/societyctl/internal/ledger"
	"github.com/societyops/societyctl/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagAsOf    string
)

var rootCmd = &cobra.Command{
	Use:   "societyctl",
	Short: "Society Maintenance Ledger CLI",
	Long:  "Track monthly maintenance dues, late fees, expenditures, complaints and amenities for a housing society.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Treat this date (YYYY-MM-DD) as today")
}

// session bundles the opened ledger and its collaborators for one command run.
type session struct {
	cfg   config.Config
	store *store.Store
	led   *ledger.Ledger
	today time.Time
}

func (s *session) Close() {
	_ = s.store.Close()
}

// openSession is the shared setup path used by all commands: load config,
// open (or seed) the store, load the roster, and run the late-fee sweep once
// so every read sees an up-to-date ledger.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	today := time.Now()
	if flagAsOf != "" {
		today, err = cli.ParseDate(flagAsOf)
		if err != nil {
			return nil, err
		}
	}

	dataDir := config.DataDir(cfg)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	st, err := store.Open(config.LedgerPath(dataDir), store.Seed{
		UnitCount:          cfg.Society.UnitCount,
		DefaultMaintenance: decimal.NewFromFloat(cfg.Billing.DefaultMaintenance),
	})
	if err != nil {
		return nil, err
	}
	if st.Warning != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %s\n", cli.WarnStyle.Render(st.Warning))
	}

	led, err := ledger.Open(st, ledger.Params{
		LateFee:     decimal.NewFromFloat(cfg.Billing.LateFee),
		FirstDueDay: cfg.Billing.FirstDueDay,
	})
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	res := led.Sweep(today)
	if !flagQuiet {
		if res.FeesApplied > 0 {
			fmt.Fprintf(os.Stderr, "  Applied late fees to %d unit(s)\n", res.FeesApplied)
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "  %s\n", cli.WarnStyle.Render(w))
		}
	}

	return &session{cfg: cfg, store: st, led: led, today: today}, nil
}

func money(s *session, d decimal.Decimal) string {
	return cli.FormatMoney(s.cfg.General.Currency, d)
}
