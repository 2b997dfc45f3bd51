package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"RELIANCE.NS", "TCS.NS", "SBIN.NS", "HDFCBANK.NS", "INFY.NS"}, cfg.Scan.Stocks)
	assert.Equal(t, 5, cfg.Scan.IntervalMin)
	assert.Equal(t, -1.5, cfg.Scan.FallThreshold)
	assert.Equal(t, 2.0, cfg.Scan.RiseThreshold)
	assert.Equal(t, 10000, cfg.Server.Port)
	assert.Equal(t, "data/alerts.db", cfg.Database.SQLitePath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
scan:
  stocks: ["AAPL", "MSFT"]
  interval_min: 10
  fall_threshold: -2.5
  rise_threshold: 3.0
server:
  port: 8080
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Scan.Stocks)
	assert.Equal(t, 10, cfg.Scan.IntervalMin)
	assert.Equal(t, -2.5, cfg.Scan.FallThreshold)
	assert.Equal(t, 3.0, cfg.Scan.RiseThreshold)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOCK_LIST", "TCS.NS , INFY.NS,")
	t.Setenv("SCAN_INTERVAL_MIN", "2")
	t.Setenv("FALL_THRESHOLD_PERCENT", "-4.5")
	t.Setenv("RISE_THRESHOLD_PERCENT", "1.2")
	t.Setenv("PORT", "9999")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"TCS.NS", "INFY.NS"}, cfg.Scan.Stocks)
	assert.Equal(t, 2, cfg.Scan.IntervalMin)
	assert.Equal(t, -4.5, cfg.Scan.FallThreshold)
	assert.Equal(t, 1.2, cfg.Scan.RiseThreshold)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Scan.Stocks = nil
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.FallThreshold = 1.0 // thresholds must not cross sign
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.RiseThreshold = -1.0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Scan.IntervalMin = -3
	assert.Error(t, cfg.Validate())
}
