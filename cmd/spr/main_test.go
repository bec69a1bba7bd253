package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/spr/internal/config"
	"github.com/verte-zerg/spr/internal/palette"
)

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestBuildConfigFlagOverridesFile(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--wpm", "500"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	fileCfg := config.FileConfig{
		Reader: config.ReaderConfig{WPM: intPtr(200), SeekStep: intPtr(5), Inline: boolPtr(false)},
		Display: config.DisplayConfig{
			BorderColor:      strPtr("red"),
			EnableAnimations: boolPtr(false),
		},
	}
	cfg, err := buildConfig(cmd, fileCfg)
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.WPM != 500 {
		t.Fatalf("expected flag wpm 500, got %d", cfg.WPM)
	}
	if cfg.SeekStep != 5 || cfg.Inline || cfg.EnableAnimations {
		t.Fatalf("expected config values to apply, got %+v", cfg)
	}
	if cfg.BorderColor != palette.Named(palette.Red) {
		t.Fatalf("expected red border, got %v", cfg.BorderColor)
	}
	if cfg.ProgressBarColor != palette.RGB(60, 100, 100) {
		t.Fatalf("expected default progress color, got %v", cfg.ProgressBarColor)
	}
	if !cfg.ShowBorder || !cfg.ShowProgressBar || cfg.PreviewWords != 0 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestBuildConfigRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.FileConfig
	}{
		{"wpm", config.FileConfig{Reader: config.ReaderConfig{WPM: intPtr(0)}}},
		{"seek-step", config.FileConfig{Reader: config.ReaderConfig{SeekStep: intPtr(-1)}}},
		{"preview-words", config.FileConfig{Reader: config.ReaderConfig{PreviewWords: intPtr(-3)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCmd()
			if _, err := buildConfig(cmd, tc.cfg); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			} else if !strings.Contains(err.Error(), tc.name) {
				t.Fatalf("expected error to mention %s, got %v", tc.name, err)
			}
		})
	}
}

func TestTextAndFileAreMutuallyExclusive(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--text", "a", "--file", "b"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when both --text and --file are set")
	}
}

func TestResolveInput(t *testing.T) {
	content, source, err := resolveInput("hello world", "", nil, true)
	if err != nil || content != "hello world" || source != sourceText {
		t.Fatalf("unexpected text input %q %q %v", content, source, err)
	}

	path := filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte("one two\nthree\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	content, source, err = resolveInput("", path, nil, true)
	if err != nil || source != path || !strings.Contains(content, "three") {
		t.Fatalf("unexpected file input %q %q %v", content, source, err)
	}

	content, source, err = resolveInput("", "", strings.NewReader("piped words"), false)
	if err != nil || source != sourceStdin || !strings.Contains(content, "piped words") {
		t.Fatalf("unexpected stdin input %q %q %v", content, source, err)
	}

	_, _, err = resolveInput("", "", strings.NewReader("ignored"), true)
	if !errors.Is(err, errNoInput) {
		t.Fatalf("expected errNoInput, got %v", err)
	}

	_, _, err = resolveInput("", filepath.Join(t.TempDir(), "missing.txt"), nil, true)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Reader.WPM != nil || cfg.Display.BorderColor != nil {
		t.Fatalf("expected commented template to leave values unset, got %+v", cfg)
	}
}
