package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store backends
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds all configuration options for the task manager
type Config struct {
	Store       StoreConfig       `yaml:"store"`
	Database    DatabaseConfig    `yaml:"database"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
	Server      ServerConfig      `yaml:"server"`
}

// StoreConfig selects the task and category store implementation
type StoreConfig struct {
	Backend    string        `yaml:"backend" env:"TM_STORE_BACKEND" env-description:"Store backend: memory, sqlite or postgres"`
	SeedFile   string        `yaml:"seed_file" env:"TM_SEED_FILE" env-description:"YAML file loaded into empty stores at startup"`
	LatencyMin time.Duration `yaml:"latency_min" env:"TM_STORE_LATENCY_MIN" env-description:"Minimum simulated latency of the memory store"`
	LatencyMax time.Duration `yaml:"latency_max" env:"TM_STORE_LATENCY_MAX" env-description:"Maximum simulated latency of the memory store"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `yaml:"dir" env:"TM_DB_DIR" env-description:"SQLite database directory"`
	Filename     string        `yaml:"filename" env:"TM_DB_FILENAME" env-description:"SQLite database filename"`
	DSN          string        `yaml:"dsn" env:"TM_DB_DSN" env-description:"Postgres connection string"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"TM_DB_QUERY_TIMEOUT" env-description:"Timeout for read queries"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"TM_DB_WRITE_TIMEOUT" env-description:"Timeout for writes"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength        int `yaml:"title_max_length" env:"TM_VALIDATION_TITLE_MAX" env-description:"Maximum task title length"`
	DescriptionMaxLength  int `yaml:"description_max_length" env:"TM_VALIDATION_DESCRIPTION_MAX" env-description:"Maximum task description length"`
	CategoryNameMaxLength int `yaml:"category_name_max_length" env:"TM_VALIDATION_CATEGORY_NAME_MAX" env-description:"Maximum category name length"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `yaml:"date_format" env:"TM_DISPLAY_DATE_FORMAT" env-description:"Layout used to print dates"`
	Color      string `yaml:"color" env:"TM_DISPLAY_COLOR" env-description:"Color output: auto, always or never"`
	ListFormat string `yaml:"list_format" env:"TM_LIST_DEFAULT_FORMAT" env-description:"Default list output: table or json"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout  time.Duration `yaml:"timeout" env:"TM_APP_TIMEOUT" env-description:"Timeout for a single command"`
	Verbose  bool          `yaml:"verbose" env:"TM_APP_VERBOSE" env-description:"Enable verbose output"`
	LogLevel string        `yaml:"log_level" env:"TM_LOG_LEVEL" env-description:"Log level: debug, info, warn or error"`
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Address         string        `yaml:"address" env:"TM_SERVER_ADDRESS" env-description:"HTTP listen address"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"TM_SERVER_ALLOWED_ORIGINS" env-separator:"," env-description:"CORS allowed origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"TM_SERVER_REQUEST_TIMEOUT" env-description:"Per-request timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"TM_SERVER_SHUTDOWN_TIMEOUT" env-description:"Graceful shutdown timeout"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
		},
		Database: DatabaseConfig{
			Dir:          filepath.Join(homeDir, ".tm"),
			Filename:     "tm.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMaxLength:        255,
			DescriptionMaxLength:  2000,
			CategoryNameMaxLength: 64,
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
			Color:      "auto",
			ListFormat: "table",
		},
		Application: ApplicationConfig{
			Timeout:  60 * time.Second,
			LogLevel: "info",
		},
		Server: ServerConfig{
			Address:         ":8080",
			AllowedOrigins:  []string{"*"},
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == ":memory:" {
		return c.Database.Filename
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if c.Database.DSN == "" {
			return &ConfigError{Field: "database.dsn", Message: "dsn is required for the postgres backend"}
		}
	default:
		return &ConfigError{Field: "store.backend", Message: "backend must be memory, sqlite or postgres"}
	}
	if c.Store.LatencyMin < 0 || c.Store.LatencyMax < c.Store.LatencyMin {
		return &ConfigError{Field: "store.latency_max", Message: "latency range must be non-negative and ordered"}
	}

	if c.Store.Backend == BackendSQLite {
		if c.Database.Dir == "" && c.Database.Filename != ":memory:" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}
	if c.Validation.CategoryNameMaxLength < 1 {
		return &ConfigError{Field: "validation.category_name_max_length", Message: "category name maximum length must be at least 1"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return &ConfigError{Field: "display.color", Message: "color must be auto, always or never"}
	}
	switch c.Display.ListFormat {
	case "table", "json":
	default:
		return &ConfigError{Field: "display.list_format", Message: "list format must be table or json"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	switch strings.ToLower(c.Application.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "application.log_level", Message: "log level must be debug, info, warn or error"}
	}

	if c.Server.Address == "" {
		return &ConfigError{Field: "server.address", Message: "server address cannot be empty"}
	}
	if c.Server.RequestTimeout <= 0 {
		return &ConfigError{Field: "server.request_timeout", Message: "request timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
