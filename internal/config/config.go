// Package config assembles the application configuration from command-line
// flags, environment variables and an optional JSON file, merged in that
// order of precedence.
package config

import "fmt"

// DefaultDatabasePath is used when no storage location is configured.
const DefaultDatabasePath = "todo.db"

// Database contains local database connection settings.
type Database struct {
	// Path is the SQLite database file location.
	Path string `env:"DATABASE_PATH" json:"database_path"`
}

// Log contains logging output settings.
type Log struct {
	// Path is the log file location. Empty means a file beside the
	// executable.
	Path string `env:"LOG_PATH" json:"log_path"`
}

// StructuredConfig is the merged configuration shared by all sources.
// Field tags drive both env parsing (caarlos0/env) and JSON decoding.
type StructuredConfig struct {
	// Storage holds local database settings.
	Storage Database `envPrefix:"TODO_" json:"storage,omitempty"`

	// Logging holds log output settings.
	Logging Log `envPrefix:"TODO_" json:"logging,omitempty"`

	// jsonFilePath is only ever set by the flag source; it selects the
	// optional JSON config layer and is not itself merged.
	jsonFilePath string
}

// GetConfig builds the configuration by layering flags, environment
// variables and the optional JSON file, then validating the result.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}

// validate fills defaults and rejects unusable values.
func (c *StructuredConfig) validate() error {
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultDatabasePath
	}

	return nil
}
