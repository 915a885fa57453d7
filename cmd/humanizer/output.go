package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/docx-humanizer/internal/config"
	"github.com/jonathan/docx-humanizer/internal/schemas"
)

// writeJSONArtifact writes v as indented JSON and validates the file against
// the schema at schemaRelPath when that schema can be found.
func writeJSONArtifact(path, schemaRelPath string, v any) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		// Distinguish between validation errors (data doesn't match schema) and schema load errors
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}
	return nil
}

// loadConfig loads and validates the config file at path. An empty path
// yields the zero config.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", path)
	}
	return *loaded, nil
}

// resolveSeed picks the seed from the flag, then the config file, then HUMANIZER_SEED.
func resolveSeed(flagSet bool, flagValue int64, cfg config.Config) (*int64, error) {
	if flagSet {
		return &flagValue, nil
	}
	if cfg.Seed != nil {
		return cfg.Seed, nil
	}
	return config.SeedFromEnv()
}
