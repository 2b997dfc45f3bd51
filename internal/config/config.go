package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. It is loaded once at
// startup and immutable afterwards, so scan passes can share it freely.
type Config struct {
	Scan struct {
		Stocks        []string `yaml:"stocks"`
		IntervalMin   int      `yaml:"interval_min"`
		FallThreshold float64  `yaml:"fall_threshold"` // percent, negative
		RiseThreshold float64  `yaml:"rise_threshold"` // percent, positive
	} `yaml:"scan"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level      string `yaml:"level"`
		FilePath   string `yaml:"file_path"`
		MaxSizeMB  int    `yaml:"max_size"`
		MaxAgeDays int    `yaml:"max_age"`
		MaxBackups int    `yaml:"max_backups"`
	} `yaml:"log"`
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
	if v := os.Getenv("STOCK_LIST"); v != "" {
		cfg.Scan.Stocks = splitSymbols(v)
	}
	if v := os.Getenv("SCAN_INTERVAL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.IntervalMin = n
		}
	}
	if v := os.Getenv("FALL_THRESHOLD_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scan.FallThreshold = f
		}
	}
	if v := os.Getenv("RISE_THRESHOLD_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scan.RiseThreshold = f
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Scan.Stocks) == 0 {
		cfg.Scan.Stocks = splitSymbols("RELIANCE.NS,TCS.NS,SBIN.NS,HDFCBANK.NS,INFY.NS")
	}
	if cfg.Scan.IntervalMin == 0 {
		cfg.Scan.IntervalMin = 5
	}
	if cfg.Scan.FallThreshold == 0 {
		cfg.Scan.FallThreshold = -1.5
	}
	if cfg.Scan.RiseThreshold == 0 {
		cfg.Scan.RiseThreshold = 2.0
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/alerts.db"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 200
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 30
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 7
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if len(c.Scan.Stocks) == 0 {
		return fmt.Errorf("scan.stocks must not be empty")
	}
	if c.Scan.IntervalMin <= 0 {
		return fmt.Errorf("scan.interval_min must be positive")
	}
	if c.Scan.FallThreshold >= 0 {
		return fmt.Errorf("scan.fall_threshold must be negative, got %v", c.Scan.FallThreshold)
	}
	if c.Scan.RiseThreshold <= 0 {
		return fmt.Errorf("scan.rise_threshold must be positive, got %v", c.Scan.RiseThreshold)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
