// Package config provides XDG path helpers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "spr"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultDBPath returns the default path for the SQLite history database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "history.db")
}

// FirstUseMarkerPath returns the marker file written after the first session.
func FirstUseMarkerPath() string {
	return filepath.Join(XDGConfigHome(), appName, ".first_use_complete")
}

// IsFirstUse reports whether the marker at path is missing.
func IsFirstUse(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}

// MarkFirstUseComplete creates the marker at path.
func MarkFirstUseComplete(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return fmt.Errorf("failed to write first-use marker: %w", err)
	}
	return nil
}
