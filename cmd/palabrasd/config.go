package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultConfigPath is read when PALABRAS_CONFIG is not set.
const DefaultConfigPath = "./palabras.yaml"

// Config is the service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Lookup LookupConfig `yaml:"lookup"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"PALABRAS_ADDR"             env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"PALABRAS_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"PALABRAS_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"PALABRAS_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LookupConfig holds Wiktionary lookup settings.
type LookupConfig struct {
	Language     string        `yaml:"language"      env:"PALABRAS_LANGUAGE"      env-default:"Spanish"`
	BaseURL      string        `yaml:"base_url"      env:"PALABRAS_BASE_URL"      env-default:"https://en.wiktionary.org"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"PALABRAS_FETCH_TIMEOUT" env-default:"10s"`
	UserAgent    string        `yaml:"user_agent"    env:"PALABRAS_USER_AGENT"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"PALABRAS_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"PALABRAS_LOG_FORMAT" env-default:"json"`
}

// LoadConfig reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is PALABRAS_CONFIG, falling back to DefaultConfigPath.
// A missing default file is not an error; a missing explicit file is.
func LoadConfig() (*Config, error) {
	var cfg Config

	path := os.Getenv("PALABRAS_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks values the tags cannot express.
func (c *Config) Validate() error {
	if c.Lookup.Language == "" {
		return fmt.Errorf("lookup.language must not be empty")
	}
	if c.Lookup.FetchTimeout <= 0 {
		return fmt.Errorf("lookup.fetch_timeout must be > 0 (got %v)", c.Lookup.FetchTimeout)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}
