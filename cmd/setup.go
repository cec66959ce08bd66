package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to societyctl!")
	fmt.Println()

	fmt.Println("  1. Society name")
	fmt.Printf("     Current: %s\n", cfg.Society.Name)
	fmt.Print("     > ")
	if name := readLine(reader); name != "" {
		cfg.Society.Name = name
	}
	fmt.Println()

	fmt.Println("  2. Number of housing units")
	fmt.Println("     The roster is seeded once and units are never deleted.")
	fmt.Printf("     Current: %d\n", cfg.Society.UnitCount)
	fmt.Print("     > ")
	if n, ok := readInt(reader); ok && n > 0 {
		cfg.Society.UnitCount = n
	}
	fmt.Println()

	fmt.Println("  3. Monthly maintenance per unit")
	fmt.Printf("     Current: %.0f\n", cfg.Billing.DefaultMaintenance)
	fmt.Print("     > ")
	if v, ok := readFloat(reader); ok && v > 0 {
		cfg.Billing.DefaultMaintenance = v
	}
	fmt.Println()

	fmt.Println("  4. Flat late fee")
	fmt.Println("     Applied once per delinquent cycle, never compounding.")
	fmt.Printf("     Current: %.0f\n", cfg.Billing.LateFee)
	fmt.Print("     > ")
	if v, ok := readFloat(reader); ok && v >= 0 {
		cfg.Billing.LateFee = v
	}
	fmt.Println()

	fmt.Println("  5. First due day of the month")
	fmt.Println("     Payments after this day of the month are late.")
	fmt.Printf("     Current: %d\n", cfg.Billing.FirstDueDay)
	fmt.Print("     > ")
	if n, ok := readInt(reader); ok && n >= 1 && n <= 28 {
		cfg.Billing.FirstDueDay = n
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `societyctl setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func readInt(r *bufio.Reader) (int, bool) {
	line := readLine(r)
	if line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	return n, err == nil
}

func readFloat(r *bufio.Reader) (float64, bool) {
	line := readLine(r)
	if line == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(line, 64)
	return v, err == nil
}
