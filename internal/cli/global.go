// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"sync"

	"github.com/spf13/cobra"
)

var (
	// NoColor indicates that styled terminal output should be disabled.
	// This is set by the global --no-color flag.
	NoColor bool

	// noColorMutex protects NoColor for concurrent access.
	noColorMutex sync.RWMutex

	// appVersion is the running application version, stamped into saved
	// history files. Set from main via SetAppVersion.
	appVersion = "dev"
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoColor, "no-color", false,
		"disable styled terminal output")
}

// IsNoColor returns true if styled output is disabled.
func IsNoColor() bool {
	noColorMutex.RLock()
	defer noColorMutex.RUnlock()
	return NoColor
}

// SetAppVersion records the application version reported to history files.
func SetAppVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

// AppVersion returns the application version.
func AppVersion() string {
	return appVersion
}
