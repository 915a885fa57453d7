// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SeedEnvVar names the environment variable that supplies a default seed.
const SeedEnvVar = "HUMANIZER_SEED"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Output    string `json:"output,omitempty" yaml:"output,omitempty"`   // Path of the humanized document
	Report    string `json:"report,omitempty" yaml:"report,omitempty"`   // Path of the JSON run report
	OutputDir string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"` // Directory for batch output

	// Processing
	Seed             *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`                                                           // Seed for reproducible runs
	SampleParagraphs int    `json:"sample_paragraphs,omitempty" yaml:"sample_paragraphs,omitempty" validate:"gte=0,lte=1000"` // Paragraphs fed to the style profile
	ProgressInterval int    `json:"progress_interval,omitempty" yaml:"progress_interval,omitempty" validate:"gte=0"`          // Paragraphs between progress lines
	Concurrency      int    `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"gte=0,lte=64"`               // Documents processed at once in batch mode

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// extension is .yaml or .yml. Returns an error if the file cannot be read or parsed.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Output != "" && !strings.EqualFold(filepath.Ext(c.Output), ".docx") {
		return fmt.Errorf("config error: 'output' must be a .docx path, got %s", c.Output)
	}

	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'out_dir' is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}

	if result.Seed == nil {
		result.Seed = defaults.Seed
	}

	// Int fields: use default if zero
	if result.SampleParagraphs == 0 {
		result.SampleParagraphs = defaults.SampleParagraphs
	}
	if result.ProgressInterval == 0 {
		result.ProgressInterval = defaults.ProgressInterval
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// SeedFromEnv reads HUMANIZER_SEED. It returns nil when the variable is unset.
func SeedFromEnv() (*int64, error) {
	raw := strings.TrimSpace(os.Getenv(SeedEnvVar))
	if raw == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", SeedEnvVar, raw, err)
	}
	return &seed, nil
}
