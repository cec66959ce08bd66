package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with no config file: %v", err)
	}
	if cfg.Society.UnitCount != 40 {
		t.Errorf("unit count = %d, want 40", cfg.Society.UnitCount)
	}
	if cfg.Billing.DefaultMaintenance != 2000 || cfg.Billing.LateFee != 1000 {
		t.Errorf("billing defaults = %+v", cfg.Billing)
	}
	if cfg.Billing.FirstDueDay != 10 {
		t.Errorf("first due day = %d, want 10", cfg.Billing.FirstDueDay)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("currency = %q, want rupee symbol", cfg.General.Currency)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Society.Name = "Green Acres"
	cfg.Society.UnitCount = 64
	cfg.Billing.DefaultMaintenance = 2500
	cfg.Billing.FirstDueDay = 7

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file not written")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Society.Name != "Green Acres" || got.Society.UnitCount != 64 {
		t.Errorf("society = %+v", got.Society)
	}
	if got.Billing.DefaultMaintenance != 2500 || got.Billing.FirstDueDay != 7 {
		t.Errorf("billing = %+v", got.Billing)
	}
}

func TestLoad_PartialConfigBackfilled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "societyctl")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	partial := "[society]\nname = \"Sunrise Towers\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Society.Name != "Sunrise Towers" {
		t.Errorf("name = %q", cfg.Society.Name)
	}
	if cfg.Society.UnitCount != 40 {
		t.Errorf("unit count = %d, want backfilled default", cfg.Society.UnitCount)
	}
	if cfg.Billing.DefaultMaintenance != 2000 {
		t.Errorf("maintenance = %v, want backfilled default", cfg.Billing.DefaultMaintenance)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("currency = %q, want backfilled default", cfg.General.Currency)
	}
}

func TestLoad_OutOfRangeDueDayReset(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "societyctl")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	bad := "[billing]\nfirst_due_day = 45\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Billing.FirstDueDay != 10 {
		t.Errorf("first due day = %d, want reset to 10", cfg.Billing.FirstDueDay)
	}
}

func TestDataDir_ConfiguredOverrideWins(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "societyctl") {
		t.Errorf("default data dir = %q", got)
	}

	cfg.General.DataDir = "/var/lib/society"
	if got := DataDir(cfg); got != "/var/lib/society" {
		t.Errorf("override data dir = %q", got)
	}
}
