// Package config provides configuration management for shellhist.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os/user"
	"path/filepath"
)

// Config is the top-level configuration struct for shellhist.
// It contains all configuration sections as embedded structs.
type Config struct {
	History HistoryConfig `toml:"history"`
	Output  OutputConfig  `toml:"output"`
}

// HistoryConfig contains history persistence settings.
type HistoryConfig struct {
	// Path is the filesystem path of the persisted history file.
	Path string `toml:"path"`

	// MaxSize is the maximum number of commands kept in history.
	// Oldest commands are evicted first once the limit is reached.
	MaxSize int `toml:"max_size"`
}

// OutputConfig contains output presentation settings.
type OutputConfig struct {
	// Format is the default output format for list/search.
	// Valid values: "table", "plain", "json".
	Format string `toml:"format"`

	// Color enables styled terminal output.
	Color bool `toml:"color"`
}

// DefaultMaxSize is the default history capacity.
const DefaultMaxSize = 100

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	usr, _ := user.Current()
	homeDir := ""
	if usr != nil {
		homeDir = usr.HomeDir
	}

	return &Config{
		History: HistoryConfig{
			Path:    filepath.Join(homeDir, ".config", "shellhist", "history.xml"),
			MaxSize: DefaultMaxSize,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if c.History.Path == "" {
		return fmt.Errorf("history.path cannot be empty")
	}
	if c.History.MaxSize < 0 {
		return fmt.Errorf("history.max_size must be >= 0; got %d", c.History.MaxSize)
	}

	validFormats := map[string]bool{
		"table": true,
		"plain": true,
		"json":  true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output.format must be one of: table, plain, json; got %q", c.Output.Format)
	}

	return nil
}
