// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Search
	Keywords     []string `json:"keywords,omitempty"`      // Keywords to search for
	Journals     []string `json:"journals,omitempty"`      // Journal labels; "all" expands to the built-in list
	SkipJournals []string `json:"skip_journals,omitempty"` // Journals to exclude from the search
	Preprints    bool     `json:"preprints,omitempty"`     // Include preprint servers (arXiv, bioRxiv)

	// Filtering and selection
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`              // Maximum articles in the report
	Days     int    `json:"days,omitempty" validate:"min=0"`                                 // Publication window in days; 0 means all time
	Sort     string `json:"sort,omitempty" validate:"omitempty,oneof=score recency journal"` // Report ordering
	Coverage string `json:"coverage,omitempty" validate:"omitempty,oneof=all full"`          // Coverage filter

	// Output
	Format string `json:"format,omitempty" validate:"omitempty,oneof=cli web"` // Report format
	Output string `json:"output,omitempty"`                                    // HTML output path (web format only)

	// Behavior
	Timeout int    `json:"timeout,omitempty" validate:"min=0"`            // HTTP timeout in seconds
	Contact string `json:"contact,omitempty" validate:"omitempty,email"`  // Contact email sent in the User-Agent
	BaseURL string `json:"base_url,omitempty" validate:"omitempty,url"`   // Override the Europe PMC search endpoint
	Verbose bool   `json:"verbose,omitempty"`                             // Print detailed debug information
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
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Slice fields: use default if empty
	if len(result.Keywords) == 0 {
		result.Keywords = defaults.Keywords
	}
	if len(result.Journals) == 0 {
		result.Journals = defaults.Journals
	}
	if len(result.SkipJournals) == 0 {
		result.SkipJournals = defaults.SkipJournals
	}

	// String fields: use default if empty
	if result.Sort == "" {
		result.Sort = defaults.Sort
	}
	if result.Coverage == "" {
		result.Coverage = defaults.Coverage
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Contact == "" {
		result.Contact = defaults.Contact
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}

	// Int fields: use default if zero
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.Days == 0 {
		result.Days = defaults.Days
	}
	if result.Timeout == 0 {
		result.Timeout = defaults.Timeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
