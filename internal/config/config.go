package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the worklog application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Notify      NotifyConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"WL_DB_DIR"`
	Filename       string        `env:"WL_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"WL_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"WL_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat    string `env:"WL_DISPLAY_DATE_FORMAT"`
	RunningStatus string `env:"WL_DISPLAY_RUNNING_STATUS"`
}

// NotifyConfig holds desktop notification configuration
type NotifyConfig struct {
	Command string `env:"WL_NOTIFY_COMMAND"`
	Title   string `env:"WL_NOTIFY_TITLE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WL_APP_TIMEOUT"`
	Verbose bool          `env:"WL_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".worklog")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "worklog.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat:    "2006-01-02",
			RunningStatus: "still running",
		},
		Notify: NotifyConfig{
			Command: "notify-send",
			Title:   "worklog",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WL_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WL_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("WL_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if perms := os.Getenv("WL_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if format := os.Getenv("WL_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if status := os.Getenv("WL_DISPLAY_RUNNING_STATUS"); status != "" {
		c.Display.RunningStatus = status
	}

	// Notify configuration
	if command := os.Getenv("WL_NOTIFY_COMMAND"); command != "" {
		c.Notify.Command = command
	}
	if title := os.Getenv("WL_NOTIFY_TITLE"); title != "" {
		c.Notify.Title = title
	}

	// Application configuration
	if timeout := os.Getenv("WL_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("WL_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.RunningStatus == "" {
		return &ConfigError{Field: "display.running_status", Message: "running status text cannot be empty"}
	}
	if c.Notify.Command == "" {
		return &ConfigError{Field: "notify.command", Message: "notify command cannot be empty"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return "config error for " + e.Field + ": " + e.Message
}

// Load builds the effective configuration: defaults, then environment
// variable overrides, then validation.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
