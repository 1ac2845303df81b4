// Package config loads docreader settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds CLI and server settings.
type Config struct {
	// Addr is the listen address of the HTTP service.
	Addr string `yaml:"addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// AllowedOrigins lists CORS origins accepted by the HTTP service.
	AllowedOrigins []string `yaml:"allowed_origins"`
	// MaxUploadBytes caps the size of uploaded files.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	// Password opens encrypted workbooks.
	Password string `yaml:"password"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:           ":8000",
		LogLevel:       "info",
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		MaxUploadBytes: 32 << 20,
	}
}

// Load reads path (if not empty) over the defaults and then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := getEnv("DOCREADER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getEnv("DOCREADER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("DOCREADER_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DOCREADER_MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	if v := getEnv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	return nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
