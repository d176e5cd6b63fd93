// Package cli provides common configuration and wiring for the IM CLI.
package cli

import (
	"os"
	"path/filepath"

	"github.com/lerenn/issue-manager/pkg/config"
	"github.com/lerenn/issue-manager/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// DefaultConfigPath returns the config file path used when no custom path
// is given.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".im", "config.yaml")
}

// NewConfigManager creates a new config Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	if ConfigPath != "" {
		return config.NewManager(ConfigPath)
	}
	return config.NewManager(DefaultConfigPath())
}

// NewLogger returns the logger matching the global verbosity flags.
// Warnings stay visible unless quiet is set.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewNoopLogger()
	case Verbose:
		return logger.NewDefaultLogger()
	default:
		return logger.NewWarnLogger()
	}
}
