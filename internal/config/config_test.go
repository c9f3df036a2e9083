package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Universe.TickersFile != "data/tickers.txt" {
		t.Errorf("unexpected tickers_file default: %s", cfg.Universe.TickersFile)
	}
	if cfg.Output.CSVPath != "data/selected_assets.csv" {
		t.Errorf("unexpected csv_path default: %s", cfg.Output.CSVPath)
	}
	if cfg.Screen.Window != "6mo" {
		t.Errorf("unexpected window default: %s", cfg.Screen.Window)
	}
	if cfg.Screen.BatchSize != 100 {
		t.Errorf("unexpected batch_size default: %d", cfg.Screen.BatchSize)
	}
	if cfg.Screen.RequestDelayMS != 500 || cfg.Screen.BatchDelayMS != 5000 {
		t.Errorf("unexpected delay defaults: %d/%d", cfg.Screen.RequestDelayMS, cfg.Screen.BatchDelayMS)
	}
	if cfg.Screen.Benchmark != "^BVSP" {
		t.Errorf("unexpected benchmark default: %s", cfg.Screen.Benchmark)
	}
	if cfg.Screen.RiskFreeRate != 0.06 {
		t.Errorf("unexpected risk_free_rate default: %v", cfg.Screen.RiskFreeRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
universe:
  tickers_file: lists/brazil.txt
screen:
  window: 1y
  batch_size: 25
  benchmark: ^GSPC
schedule:
  cron: "0 0 8 * * 1"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SCREEN_BENCHMARK", "^IBOV")
	t.Setenv("SCREEN_BATCH_SIZE", "50")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Universe.TickersFile != "lists/brazil.txt" {
		t.Errorf("expected file value, got %s", cfg.Universe.TickersFile)
	}
	if cfg.Screen.Window != "1y" {
		t.Errorf("expected window 1y, got %s", cfg.Screen.Window)
	}
	// Env wins over file
	if cfg.Screen.Benchmark != "^IBOV" {
		t.Errorf("expected env benchmark ^IBOV, got %s", cfg.Screen.Benchmark)
	}
	if cfg.Screen.BatchSize != 50 {
		t.Errorf("expected env batch_size 50, got %d", cfg.Screen.BatchSize)
	}
	if cfg.Schedule.Cron != "0 0 8 * * 1" {
		t.Errorf("expected cron from file, got %q", cfg.Schedule.Cron)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Screen.BatchSize = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative batch_size")
	}

	cfg.Screen.BatchSize = 10
	cfg.Screen.RequestDelayMS = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative request delay")
	}
}
