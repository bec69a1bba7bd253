// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Reader  ReaderConfig  `toml:"reader"`
	Display DisplayConfig `toml:"display"`
}

// ReaderConfig maps pacing and layout settings.
type ReaderConfig struct {
	WPM          *int  `toml:"wpm"`
	SeekStep     *int  `toml:"seek-step"`
	PreviewWords *int  `toml:"preview-words"`
	Inline       *bool `toml:"inline"`
}

// DisplayConfig maps colors and visual effects.
type DisplayConfig struct {
	BorderColor      *string `toml:"border-color"`
	ProgressBarColor *string `toml:"progress-bar-color"`
	ShowBorder       *bool   `toml:"show-border"`
	ShowProgressBar  *bool   `toml:"show-progress-bar"`
	EnableAnimations *bool   `toml:"enable-animations"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// WriteDefaultConfig writes contents to path unless a file is already there.
// It reports whether the file was created.
func WriteDefaultConfig(path string, contents []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
