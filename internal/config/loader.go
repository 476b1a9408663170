package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML config file
const ConfigFileEnv = "TM_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a new configuration loader. The config file path is taken from TM_CONFIG.
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
		path:   os.Getenv(ConfigFileEnv),
	}
}

// NewLoaderWithFile creates a loader that reads the given YAML file before the environment
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config: NewConfig(),
		path:   path,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file, when one is configured
// 3. Override with environment variables
// Command line flags are applied afterwards by LoadWithOverrides.
func (l *Loader) Load() (*Config, error) {
	if err := l.read(); err != nil {
		return nil, err
	}
	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

func (l *Loader) read() error {
	if l.path != "" {
		if err := cleanenv.ReadConfig(l.path, l.config); err != nil {
			return fmt.Errorf("read config file %s: %w", l.path, err)
		}
	} else if err := cleanenv.ReadEnv(l.config); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides.
// Validation runs once, after the overrides.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.read(); err != nil {
		return nil, err
	}
	config := l.config

	if overrides != nil {
		overrides.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Usage describes every environment variable the configuration understands
func Usage() string {
	text, err := cleanenv.GetDescription(NewConfig(), nil)
	if err != nil {
		return ""
	}
	return text
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StoreBackend *string
	SeedFile     *string

	DBDir      *string
	DBFilename *string
	DBDSN      *string

	DateFormat *string
	Color      *string
	ListFormat *string

	Timeout  *time.Duration
	Verbose  *bool
	LogLevel *string

	ServerAddress *string
}

// Apply copies every set override onto the configuration
func (o *ConfigOverrides) Apply(config *Config) {
	if o.StoreBackend != nil {
		config.Store.Backend = *o.StoreBackend
	}
	if o.SeedFile != nil {
		config.Store.SeedFile = *o.SeedFile
	}

	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBDSN != nil {
		config.Database.DSN = *o.DBDSN
	}

	if o.DateFormat != nil {
		config.Display.DateFormat = *o.DateFormat
	}
	if o.Color != nil {
		config.Display.Color = *o.Color
	}
	if o.ListFormat != nil {
		config.Display.ListFormat = *o.ListFormat
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.LogLevel != nil {
		config.Application.LogLevel = *o.LogLevel
	}

	if o.ServerAddress != nil {
		config.Server.Address = *o.ServerAddress
	}
}
