// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DataDir returns the default application data directory.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spendiq"
	}
	return filepath.Join(home, ".local", "share", "spendiq")
}

// DefaultDatabasePath is the default transactions database location.
func DefaultDatabasePath() string { return filepath.Join(DataDir(), "spendiq.db") }

// DefaultDatasetPath is the default base training dataset location.
func DefaultDatasetPath() string { return filepath.Join(DataDir(), "ml", "dataset.csv") }

// DefaultFeedbackPath is the default feedback ledger location.
func DefaultFeedbackPath() string { return filepath.Join(DataDir(), "ml", "user_feedback.csv") }

// DefaultSnapshotPath is the default classifier snapshot location.
func DefaultSnapshotPath() string {
	return filepath.Join(DataDir(), "ml", "transaction_classifier.gob")
}
