// Package config provides configuration loading and validation for the
// matching service. Values come from a JSON file, the environment, or CLI
// flags; later sources win.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default values applied when neither file, environment, nor flags supply one.
const (
	DefaultListenAddr      = ":8080"
	DefaultAnalyzerTimeout = 20 * time.Second
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	ListenAddr  string `json:"listen_addr,omitempty"`  // HTTP listen address
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// External analyzer
	APIKey                 string `json:"api_key,omitempty"`                  // Gemini API key; empty disables the external analyzer
	GeminiModel            string `json:"gemini_model,omitempty"`             // Gemini model name
	AnalyzerTimeoutSeconds int    `json:"analyzer_timeout_seconds,omitempty"` // Bound on one external call

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Call after godotenv has
// loaded any .env file.
func FromEnv() Config {
	cfg := Config{
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("GEMINI_MODEL"),
	}
	if v := os.Getenv("ANALYZER_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.AnalyzerTimeoutSeconds = seconds
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.AnalyzerTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'analyzer_timeout_seconds' must be non-negative")
	}
	return nil
}

// AnalyzerTimeout returns the bound for one external analyzer call.
func (c *Config) AnalyzerTimeout() time.Duration {
	if c.AnalyzerTimeoutSeconds <= 0 {
		return DefaultAnalyzerTimeout
	}
	return time.Duration(c.AnalyzerTimeoutSeconds) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file values under environment and
// CLI flag values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.ListenAddr == "" {
		result.ListenAddr = DefaultListenAddr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}

	// Int fields: use default if zero
	if result.AnalyzerTimeoutSeconds == 0 {
		result.AnalyzerTimeoutSeconds = defaults.AnalyzerTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
