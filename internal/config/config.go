package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all societyctl configuration.
type Config struct {
	Society SocietyConfig `toml:"society"`
	Billing BillingConfig `toml:"billing"`
	General GeneralConfig `toml:"general"`
}

// SocietyConfig describes the building this instance administers.
type SocietyConfig struct {
	Name      string `toml:"name"`
	UnitCount int    `toml:"unit_count"`
}

// BillingConfig holds the dues and late-fee constants.
// Amounts are plain numbers in the society's currency.
type BillingConfig struct {
	DefaultMaintenance float64 `toml:"default_maintenance"`
	LateFee            float64 `toml:"late_fee"`
	FirstDueDay        int     `toml:"first_due_day"`
	FinalDueDay        int     `toml:"final_due_day"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
	DataDir  string `toml:"data_dir,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Society: SocietyConfig{
			Name:      "My Society",
			UnitCount: 40,
		},
		Billing: BillingConfig{
			DefaultMaintenance: 2000,
			LateFee:            1000,
			FirstDueDay:        10,
			FinalDueDay:        28,
		},
		General: GeneralConfig{
			Currency: "₹",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "societyctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "societyctl")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "societyctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "societyctl")
}

// DataDir resolves the data directory, preferring the configured override.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return DefaultDataDir()
}

// LedgerPath returns the path of the ledger database inside dir.
func LedgerPath(dir string) string {
	return filepath.Join(dir, "ledger.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return normalize(cfg), nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// normalize backfills zero-valued fields with defaults so a hand-edited
// partial config never turns off billing.
func normalize(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Society.UnitCount <= 0 {
		cfg.Society.UnitCount = def.Society.UnitCount
	}
	if cfg.Billing.DefaultMaintenance <= 0 {
		cfg.Billing.DefaultMaintenance = def.Billing.DefaultMaintenance
	}
	if cfg.Billing.LateFee < 0 {
		cfg.Billing.LateFee = def.Billing.LateFee
	}
	if cfg.Billing.FirstDueDay <= 0 || cfg.Billing.FirstDueDay > 28 {
		cfg.Billing.FirstDueDay = def.Billing.FirstDueDay
	}
	if cfg.Billing.FinalDueDay <= 0 || cfg.Billing.FinalDueDay > 31 {
		cfg.Billing.FinalDueDay = def.Billing.FinalDueDay
	}
	if cfg.General.Currency == "" {
		cfg.General.Currency = def.General.Currency
	}
	return cfg
}
