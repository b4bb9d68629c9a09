package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"aihustle/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Data      DataConfig      `yaml:"data"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Auth      AuthConfig      `yaml:"auth"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	Debug            bool   `yaml:"debug"`              // same as --verbose
	MaxContentLength int64  `yaml:"max_content_length"` // request body limit in bytes
}

// DataConfig locates the flat data files.
type DataConfig struct {
	ResearchPath string `yaml:"research_path"`
	LeadsPath    string `yaml:"leads_path"`
}

// LogConfig configures the log sinks.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// RateLimitConfig sets per-client request quotas.
type RateLimitConfig struct {
	DefaultPerHour      int `yaml:"default_per_hour"`
	StrategistPerMinute int `yaml:"strategist_per_minute"`
}

// AuthConfig configures the API-key guard.
type AuthConfig struct {
	APIKeySecret  string `yaml:"api_key_secret"` // clients send its SHA-256 hex digest
	RequireAPIKey bool   `yaml:"require_api_key"`
}

// Addr returns host:port for the listener.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             5000,
			MaxContentLength: 16 << 20,
		},
		Data: DataConfig{
			ResearchPath: store.DefaultResearchPath,
			LeadsPath:    store.DefaultLeadsPath,
		},
		Log: LogConfig{
			File:  "ai_hustle.log",
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			DefaultPerHour:      100,
			StrategistPerMinute: 10,
		},
		Auth: AuthConfig{
			APIKeySecret: "your-secret-key",
		},
	}
}

// LoadConfig reads YAML from path over the defaults and applies environment
// overrides. A missing file is not an error; an empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("AIHUSTLE_API_KEY_SECRET"); v != "" {
		c.Auth.APIKeySecret = v
	}
	if v := os.Getenv("AIHUSTLE_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("AIHUSTLE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AIHUSTLE_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("AIHUSTLE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AIHUSTLE_DEBUG: %w", err)
		}
		c.Server.Debug = debug
	}
	return nil
}

// Validate checks the values the server cannot run without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Server.MaxContentLength <= 0 {
		return fmt.Errorf("server.max_content_length must be > 0")
	}
	if c.RateLimit.DefaultPerHour <= 0 || c.RateLimit.StrategistPerMinute <= 0 {
		return fmt.Errorf("rate_limit values must be > 0")
	}
	if c.Auth.RequireAPIKey && c.Auth.APIKeySecret == "" {
		return fmt.Errorf("auth.api_key_secret is required when auth.require_api_key is set")
	}
	return nil
}
