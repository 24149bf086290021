// Package config provides configuration loading and validation for the
// parser service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config represents service configuration. Values can come from a JSON
// file, environment variables, or defaults; environment wins over file.
type Config struct {
	Port           int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
	APIKey         string `json:"api_key,omitempty"`                         // Gemini API key; empty disables AI extraction
	MaxInputChars  int    `json:"max_input_chars,omitempty" validate:"gte=0"` // truncation limit for AI input
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty" validate:"gte=0"`
	Verbose        bool   `json:"verbose,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           8080,
		MaxInputChars:  15000,
		MaxUploadBytes: 10 << 20,
	}
}

// Load reads configuration in precedence order: defaults, then the JSON
// file at path (optional, "" skips it), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.merge(*fileCfg)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string) (*Config, error) {
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

// merge overlays non-zero fields from other onto c.
func (c Config) merge(other Config) Config {
	result := c
	if other.Port != 0 {
		result.Port = other.Port
	}
	if other.APIKey != "" {
		result.APIKey = other.APIKey
	}
	if other.MaxInputChars != 0 {
		result.MaxInputChars = other.MaxInputChars
	}
	if other.MaxUploadBytes != 0 {
		result.MaxUploadBytes = other.MaxUploadBytes
	}
	if other.Verbose {
		result.Verbose = true
	}
	return result
}

// applyEnv overrides fields from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("MAX_INPUT_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxInputChars = n
		}
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxUploadBytes = n
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
