package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "worklog.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, "still running", cfg.Display.RunningStatus)
	assert.Equal(t, "notify-send", cfg.Notify.Command)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WL_DB_DIR", "/tmp/wl-test")
	t.Setenv("WL_DB_FILENAME", "custom.db")
	t.Setenv("WL_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("WL_DISPLAY_RUNNING_STATUS", "in progress")
	t.Setenv("WL_NOTIFY_COMMAND", "true")
	t.Setenv("WL_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/wl-test", cfg.Database.Dir)
	assert.Equal(t, "custom.db", cfg.Database.Filename)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "in progress", cfg.Display.RunningStatus)
	assert.Equal(t, "true", cfg.Notify.Command)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, filepath.Join("/tmp/wl-test", "custom.db"), cfg.GetDatabasePath())
}

func TestLoadFromEnvironment_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("WL_DB_QUERY_TIMEOUT", "not-a-duration")
	t.Setenv("WL_APP_VERBOSE", "maybe")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"empty filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"empty date format", func(c *Config) { c.Display.DateFormat = "" }, "display.date_format"},
		{"empty notify command", func(c *Config) { c.Notify.Command = "" }, "notify.command"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}
