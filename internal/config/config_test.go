package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Instruments, 2)
	assert.Equal(t, "A3M.MC", cfg.Instruments[0].Symbol)
	assert.Equal(t, "^IBEX", cfg.Instruments[1].Symbol)
	assert.Equal(t, "0 0 21 * * *", cfg.Schedule.DailyCron)
	assert.Equal(t, time.Minute, cfg.Schedule.PollInterval)
	assert.True(t, cfg.Schedule.RunOnStart)
	assert.Equal(t, DefaultFileName, filepath.Base(cfg.Output.Path))
	assert.False(t, cfg.Output.DryRun)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
instruments:
  - symbol: SAN.MC
    name: Santander
  - symbol: ^STOXX50E
    label: EURO STOXX 50
schedule:
  daily_cron: "0 30 18 * * 1-5"
  poll_interval: 30s
  run_on_start: false
data_source:
  timeout: 10s
output:
  path: /tmp/quotes.txt
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "SAN.MC", cfg.Instruments[0].Symbol)
	assert.Equal(t, "EURO STOXX 50", cfg.Instruments[1].Label)
	assert.Equal(t, "0 30 18 * * 1-5", cfg.Schedule.DailyCron)
	assert.Equal(t, 30*time.Second, cfg.Schedule.PollInterval)
	assert.False(t, cfg.Schedule.RunOnStart)
	assert.Equal(t, 10*time.Second, cfg.DataSource.Timeout)
	assert.Equal(t, "/tmp/quotes.txt", cfg.Output.Path)
	// untouched keys keep their defaults
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "output:\n  path: /tmp/from-file.txt\n")
	t.Setenv("OUTPUT_PATH", "/tmp/from-env.txt")
	t.Setenv("CRON_DAILY", "0 15 22 * * *")
	t.Setenv("RUN_ON_START", "false")
	t.Setenv("POLL_INTERVAL", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.txt", cfg.Output.Path)
	assert.Equal(t, "0 15 22 * * *", cfg.Schedule.DailyCron)
	assert.False(t, cfg.Schedule.RunOnStart)
	assert.Equal(t, 5*time.Second, cfg.Schedule.PollInterval)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "schedule: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"one instrument", func(c *Config) { c.Instruments = c.Instruments[:1] }, "exactly 2"},
		{"empty symbol", func(c *Config) { c.Instruments[1].Symbol = "" }, "instruments[1].symbol"},
		{"no cron", func(c *Config) { c.Schedule.DailyCron = "" }, "daily_cron"},
		{"zero interval", func(c *Config) { c.Schedule.PollInterval = 0 }, "poll_interval"},
		{"no output", func(c *Config) { c.Output.Path = "" }, "output.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_DryRun(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output:\n  dry_run: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Output.DryRun)

	t.Setenv("DRY_RUN", "false")
	cfg, err = Load(writeConfig(t, "output:\n  dry_run: true\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Output.DryRun)
}
