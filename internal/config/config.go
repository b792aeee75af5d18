package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Verify      VerifyConfig   `yaml:"verify"`
	Environment string         `yaml:"environment"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	Host      string `yaml:"host"`
	StaticDir string `yaml:"static_dir"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the record store connection settings.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// VerifyConfig holds email verification settings.
type VerifyConfig struct {
	// DisposableDomains replaces the built-in seed list when non-empty.
	// The set is fixed for the lifetime of the process.
	DisposableDomains []string `yaml:"disposable_domains"`
	MXTimeoutSeconds  int      `yaml:"mx_timeout_seconds"`
}

// MXTimeout returns the DNS lookup timeout as a duration.
func (c VerifyConfig) MXTimeout() time.Duration {
	return time.Duration(c.MXTimeoutSeconds) * time.Second
}

// Load reads and parses the configuration file. A missing file is not an
// error: the service is fully operable from defaults and environment
// variables alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "./web/dist"
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = "postgres://localhost:5432/mailcheck?sslmode=disable"
	}
	if cfg.Verify.MXTimeoutSeconds == 0 {
		cfg.Verify.MXTimeoutSeconds = 3
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so local secrets can live in .env and real env vars win in deployment.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.Server.StaticDir = dir
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}

	return cfg, nil
}
