package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Providers accepted by data_source.provider.
const (
	ProviderYahoo     = "yahoo"
	ProviderFinanceGo = "financego"
	ProviderREST      = "rest"
	ProviderMock      = "mock"
)

// DefaultPath is read when neither --config nor CONFIG_PATH is given.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider       string `yaml:"provider"`
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		Period         string `yaml:"period"`
		Interval       string `yaml:"interval"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Retries        int    `yaml:"retries"`
	} `yaml:"data_source"`
	Chart struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"chart"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Defaults struct {
		Tickers         []string `yaml:"tickers"`
		IntervalSeconds int      `yaml:"interval_seconds"`
	} `yaml:"defaults"`
	Proxy string `yaml:"proxy"`
}

// Load reads a .env file if present, then config from a YAML file, then
// applies environment variable overrides and defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.DataSource.Retries = -1

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
	if v := os.Getenv("SIGNALWATCH_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("SIGNALWATCH_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("SIGNALWATCH_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SIGNALWATCH_PERIOD"); v != "" {
		cfg.DataSource.Period = v
	}
	if v := os.Getenv("SIGNALWATCH_INTERVAL"); v != "" {
		cfg.DataSource.Interval = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SIGNALWATCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SIGNALWATCH_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SIGNALWATCH_TIMEOUT_SECONDS: %w", err)
		}
		cfg.DataSource.TimeoutSeconds = n
	}

	// Defaults
	cfg.DataSource.Provider = strings.ToLower(strings.TrimSpace(cfg.DataSource.Provider))
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = ProviderYahoo
	}
	if cfg.DataSource.Period == "" {
		cfg.DataSource.Period = "6mo"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "1d"
	}
	if cfg.DataSource.TimeoutSeconds == 0 {
		cfg.DataSource.TimeoutSeconds = 30
	}
	if cfg.DataSource.Retries < 0 {
		cfg.DataSource.Retries = 2
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 100
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 20
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Defaults.IntervalSeconds == 0 {
		cfg.Defaults.IntervalSeconds = 3600
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case ProviderYahoo, ProviderFinanceGo, ProviderMock:
	case ProviderREST:
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not one of yahoo, financego, rest, mock", c.DataSource.Provider)
	}
	if c.DataSource.TimeoutSeconds < 0 {
		return fmt.Errorf("data_source.timeout_seconds must not be negative")
	}
	if c.Chart.Width < 10 || c.Chart.Height < 5 {
		return fmt.Errorf("chart size %dx%d is too small (minimum 10x5)", c.Chart.Width, c.Chart.Height)
	}
	if c.Defaults.IntervalSeconds < 0 {
		return fmt.Errorf("defaults.interval_seconds must be positive")
	}
	return nil
}
