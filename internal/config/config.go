// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Source      string `json:"source,omitempty"`       // Path to source material text file
	FormatPack  string `json:"format_pack,omitempty"`  // Path to a custom format pack JSON
	Output      string `json:"output,omitempty"`       // Path to write the article to
	Credentials string `json:"credentials,omitempty"`  // Google credentials file for translation

	// Behavior
	Format      string `json:"format,omitempty"`       // Format slug to generate
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Model override
	SourceLang  string `json:"source_lang,omitempty"`  // Source language hint ("auto" to detect)
	MaxAttempts int    `json:"max_attempts,omitempty"` // Regeneration attempt budget
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // Address for serve mode
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Source != "" {
		if _, err := os.Stat(c.Source); os.IsNotExist(err) {
			return fmt.Errorf("config error: source file not found: %s", c.Source)
		}
	}
	if c.FormatPack != "" {
		if _, err := os.Stat(c.FormatPack); os.IsNotExist(err) {
			return fmt.Errorf("config error: format pack file not found: %s", c.FormatPack)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Source == "" {
		result.Source = defaults.Source
	}
	if result.FormatPack == "" {
		result.FormatPack = defaults.FormatPack
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Credentials == "" {
		result.Credentials = defaults.Credentials
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.SourceLang == "" {
		result.SourceLang = defaults.SourceLang
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}
