// Package main provides the CLI entrypoint for spr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/spr/internal/config"
	"github.com/verte-zerg/spr/internal/model"
	"github.com/verte-zerg/spr/internal/pacing"
	"github.com/verte-zerg/spr/internal/palette"
	"github.com/verte-zerg/spr/internal/stats"
	"github.com/verte-zerg/spr/internal/store"
	"github.com/verte-zerg/spr/internal/text"
	"github.com/verte-zerg/spr/internal/tui"
)

const (
	defaultWPM          = 300
	defaultSeekStep     = 10
	defaultPreviewWords = 0
	defaultColor        = "60,100,100"
)

const (
	sourceText  = "text"
	sourceStdin = "stdin"
)

var errNoInput = errors.New("either --text or --file must be provided")

var (
	readText         string
	readFile         string
	readWPM          int
	readSeekStep     int
	readPreview      int
	readInline       bool
	borderColor      string
	progressBarColor string
	showBorder       bool
	showProgressBar  bool
	enableAnimations bool

	historySince string
	historyLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spr",
		Short:         "Speed reader for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReaderCmd,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&readText, "text", "t", "", "text to read")
	flags.StringVarP(&readFile, "file", "f", "", "file to read")
	flags.IntVarP(&readWPM, "wpm", "w", defaultWPM, "words per minute")
	flags.IntVar(&readSeekStep, "seek-step", defaultSeekStep, "words skipped per fast-forward/rewind")
	flags.IntVar(&readPreview, "preview-words", defaultPreviewWords, "number of upcoming words to show")
	flags.BoolVar(&readInline, "inline", true, "render inline instead of fullscreen")
	flags.StringVar(&borderColor, "border-color", defaultColor, "border color (name, #RRGGBB, or R,G,B)")
	flags.StringVar(&progressBarColor, "progress-bar-color", defaultColor, "progress bar color (name, #RRGGBB, or R,G,B)")
	flags.BoolVar(&showBorder, "show-border", true, "draw the border in inline mode")
	flags.BoolVar(&showProgressBar, "show-progress-bar", true, "draw the progress bar")
	flags.BoolVar(&enableAnimations, "animations", true, "enable border and progress animations")
	rootCmd.MarkFlagsMutuallyExclusive("text", "file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runReaderCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := buildConfig(cmd, fileCfg)
	if err != nil {
		return err
	}

	stdinIsTTY := term.IsTerminal(int(os.Stdin.Fd()))
	content, source, err := resolveInput(readText, readFile, os.Stdin, stdinIsTTY)
	if err != nil {
		return err
	}
	words, err := text.Tokenize(content)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	engine, err := pacing.New(words, cfg.WPM)
	if err != nil {
		return fmt.Errorf("failed to start reader: %w", err)
	}

	var opts []tui.Option
	markerPath := config.FirstUseMarkerPath()
	if config.IsFirstUse(markerPath) {
		opts = append(opts, tui.WithHelpOpen())
		if _, err := config.WriteDefaultConfig(config.DefaultConfigPath(), []byte(defaultConfigTemplate())); err != nil {
			logErrf("failed to write default config: %v\n", err)
		}
		if err := config.MarkFirstUseComplete(markerPath); err != nil {
			logErrf("failed to record first use: %v\n", err)
		}
	}

	reader := tui.NewModel(cfg, engine, opts...)
	programOpts := []tea.ProgramOption{}
	if !cfg.Inline {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if !stdinIsTTY {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	program := tea.NewProgram(reader, programOpts...)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if m, ok := final.(*tui.Model); ok {
		session := m.Session()
		session.Source = source
		saveSession(session)
	}
	return nil
}

// buildConfig merges flags, config file values, and defaults. Explicit flags win.
func buildConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	applyIntConfig(cmd, "wpm", &readWPM, fileCfg.Reader.WPM)
	applyIntConfig(cmd, "seek-step", &readSeekStep, fileCfg.Reader.SeekStep)
	applyIntConfig(cmd, "preview-words", &readPreview, fileCfg.Reader.PreviewWords)
	applyBoolConfig(cmd, "inline", &readInline, fileCfg.Reader.Inline)
	applyStringConfig(cmd, "border-color", &borderColor, fileCfg.Display.BorderColor)
	applyStringConfig(cmd, "progress-bar-color", &progressBarColor, fileCfg.Display.ProgressBarColor)
	applyBoolConfig(cmd, "show-border", &showBorder, fileCfg.Display.ShowBorder)
	applyBoolConfig(cmd, "show-progress-bar", &showProgressBar, fileCfg.Display.ShowProgressBar)
	applyBoolConfig(cmd, "animations", &enableAnimations, fileCfg.Display.EnableAnimations)

	cfg := model.Config{
		WPM:              readWPM,
		Inline:           readInline,
		PreviewWords:     readPreview,
		SeekStep:         readSeekStep,
		BorderColor:      palette.Parse(borderColor),
		ProgressBarColor: palette.Parse(progressBarColor),
		ShowBorder:       showBorder,
		ShowProgressBar:  showProgressBar,
		EnableAnimations: enableAnimations,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// resolveInput returns the text to read and a label for where it came from.
func resolveInput(textArg, fileArg string, stdin io.Reader, stdinIsTTY bool) (string, string, error) {
	switch {
	case textArg != "":
		return textArg, sourceText, nil
	case fileArg != "":
		content, err := text.LoadFile(fileArg)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file: %w", err)
		}
		return content, fileArg, nil
	case !stdinIsTTY:
		content, err := text.Read(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return content, sourceStdin, nil
	default:
		return "", "", errNoInput
	}
}

func saveSession(session model.ReadingSession) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if _, err := st.InsertSession(context.Background(), session); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if _, err := config.WriteDefaultConfig(path, []byte(defaultConfigTemplate())); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past reading sessions",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(cmd.Context(), st, model.HistoryConfig{Last: historyLast, Since: sinceTime})
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if err := report.Render(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# spr configuration
# Uncomment a value to enable it. CLI flags override config values.

[reader]
# wpm = %d                # Words per minute
# seek-step = %d          # Words skipped by h/l
# preview-words = %d       # Upcoming words shown after the current one
# inline = true           # Render inline instead of fullscreen

[display]
# Colors accept a name (cyan, lightblue, ...), "#RRGGBB", or "R,G,B".
# border-color = %q
# progress-bar-color = %q
# show-border = true
# show-progress-bar = true
# enable-animations = true
`,
		defaultWPM,
		defaultSeekStep,
		defaultPreviewWords,
		defaultColor,
		defaultColor,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.WPM <= 0 {
		return fmt.Errorf("--wpm must be > 0")
	}
	if cfg.SeekStep <= 0 {
		return fmt.Errorf("--seek-step must be > 0")
	}
	if cfg.PreviewWords < 0 {
		return fmt.Errorf("--preview-words must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
