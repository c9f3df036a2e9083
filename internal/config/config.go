package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Universe struct {
		TickersFile string `yaml:"tickers_file"`
	} `yaml:"universe"`
	Screen struct {
		Window         string  `yaml:"window"`
		BatchSize      int     `yaml:"batch_size"`
		RequestDelayMS int     `yaml:"request_delay_ms"`
		BatchDelayMS   int     `yaml:"batch_delay_ms"`
		Benchmark      string  `yaml:"benchmark"`
		RiskFreeRate   float64 `yaml:"risk_free_rate"`
	} `yaml:"screen"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Output struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"` // empty means run once and exit
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS_FILE"); v != "" {
		cfg.Universe.TickersFile = v
	}
	if v := os.Getenv("OUTPUT_CSV"); v != "" {
		cfg.Output.CSVPath = v
	}
	if v := os.Getenv("DATASOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATASOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCREEN_WINDOW"); v != "" {
		cfg.Screen.Window = v
	}
	if v := os.Getenv("SCREEN_BENCHMARK"); v != "" {
		cfg.Screen.Benchmark = v
	}
	if v := os.Getenv("SCREEN_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Screen.BatchSize = n
		}
	}
	if v := os.Getenv("SCREEN_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Universe.TickersFile == "" {
		cfg.Universe.TickersFile = "data/tickers.txt"
	}
	if cfg.Output.CSVPath == "" {
		cfg.Output.CSVPath = "data/selected_assets.csv"
	}
	if cfg.Screen.Window == "" {
		cfg.Screen.Window = "6mo"
	}
	if cfg.Screen.BatchSize == 0 {
		cfg.Screen.BatchSize = 100
	}
	if cfg.Screen.RequestDelayMS == 0 {
		cfg.Screen.RequestDelayMS = 500
	}
	if cfg.Screen.BatchDelayMS == 0 {
		cfg.Screen.BatchDelayMS = 5000
	}
	if cfg.Screen.Benchmark == "" {
		cfg.Screen.Benchmark = "^BVSP"
	}
	if cfg.Screen.RiskFreeRate == 0 {
		cfg.Screen.RiskFreeRate = 0.06
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/asset_screener.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Universe.TickersFile == "" {
		return fmt.Errorf("universe.tickers_file is required")
	}
	if c.Output.CSVPath == "" {
		return fmt.Errorf("output.csv_path is required")
	}
	if c.Screen.BatchSize <= 0 {
		return fmt.Errorf("screen.batch_size must be positive")
	}
	if c.Screen.RequestDelayMS < 0 || c.Screen.BatchDelayMS < 0 {
		return fmt.Errorf("screen delays must be non-negative")
	}
	return nil
}
