// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/spr/internal/effects"
	"github.com/verte-zerg/spr/internal/model"
	"github.com/verte-zerg/spr/internal/pacing"
	"github.com/verte-zerg/spr/internal/screen"
)

// InlineHeight is the number of rows the reader occupies in inline mode.
const InlineHeight = 5

const frameInterval = time.Second / 30

// pacingMsg ends one bounded wait. Waits are numbered so that a key press,
// which starts a new wait, turns the pending one stale.
type pacingMsg struct {
	seq int
}

// frameMsg redraws animations between pacing waits.
type frameMsg struct{}

type overlay struct {
	visible bool
	scroll  int
}

// Model implements the Bubble Tea reading UI.
type Model struct {
	config model.Config
	engine *pacing.Engine
	clock  effects.Clock
	keys   keyMap
	now    func() time.Time

	help overlay
	seq  int

	width  int
	height int

	startedAt  time.Time
	endedAt    time.Time
	wordsShown int
	finished   bool
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now. Use the same clock as the pacing engine.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithHelpOpen starts the session with the help overlay visible.
func WithHelpOpen() Option {
	return func(m *Model) {
		m.help.visible = true
	}
}

// NewModel constructs a reading TUI model around engine.
func NewModel(cfg model.Config, engine *pacing.Engine, opts ...Option) *Model {
	m := &Model{
		config:     cfg,
		engine:     engine,
		keys:       newKeyMap(cfg.SeekStep),
		now:        time.Now,
		wordsShown: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.startedAt = m.now()
	m.clock = effects.NewClock(m.startedAt)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.step()}
	if m.config.EnableAnimations {
		cmds = append(cmds, frameTick())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if quit := m.apply(m.keys.Command(msg)); quit {
			return m, m.quit()
		}
		return m, m.step()
	case pacingMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.step()
	case frameMsg:
		if m.quitting {
			return m, nil
		}
		return m, frameTick()
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 {
		return ""
	}
	height := m.height
	if m.config.Inline && (height <= 0 || height > InlineHeight) {
		height = InlineHeight
	}
	g := screen.NewGrid(m.width, height)
	compose(g, m.config, m.keys, m.frame())
	return g.Render()
}

// Session summarizes the reading session so far.
func (m *Model) Session() model.ReadingSession {
	ended := m.endedAt
	if ended.IsZero() {
		ended = m.now()
	}
	return model.ReadingSession{
		StartedAt:  m.startedAt,
		EndedAt:    ended,
		WPM:        m.engine.WPM(),
		TotalWords: m.engine.Total(),
		WordsShown: m.wordsShown,
		Finished:   m.finished,
	}
}

func (m *Model) frame() frame {
	word, _ := m.engine.Current()
	return frame{
		word:       word,
		preview:    m.engine.Upcoming(m.config.PreviewWords),
		index:      m.engine.Index(),
		total:      m.engine.Total(),
		paused:     m.engine.Paused(),
		elapsedMs:  m.clock.ElapsedMs(m.now()),
		help:       m.help.visible,
		helpScroll: m.help.scroll,
	}
}

// apply performs cmd and reports whether the session should end.
func (m *Model) apply(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		if m.help.visible {
			m.closeHelp()
			return false
		}
		return true
	case CmdTogglePause:
		m.engine.TogglePause()
	case CmdToggleHelp:
		if m.help.visible {
			m.closeHelp()
		} else {
			m.help.visible = true
		}
	case CmdScrollDown:
		if m.help.visible {
			m.help.scroll++
		}
	case CmdScrollUp:
		if m.help.visible && m.help.scroll > 0 {
			m.help.scroll--
		}
	case CmdFastForward:
		if !m.help.visible {
			m.engine.Seek(m.config.SeekStep)
			m.markShown()
		}
	case CmdRewind:
		if !m.help.visible {
			m.engine.Seek(-m.config.SeekStep)
		}
	}
	return false
}

func (m *Model) closeHelp() {
	m.help.visible = false
	m.help.scroll = 0
}

// step runs the advance check and schedules the next bounded wait. Every call
// invalidates the wait scheduled before it.
func (m *Model) step() tea.Cmd {
	m.seq++
	if m.quitting || m.help.visible || m.engine.Paused() {
		return nil
	}
	if m.revealing() {
		return m.wait(effects.RevealRemaining(m.clock.ElapsedMs(m.now())))
	}
	if m.engine.ShouldAdvance() {
		if !m.engine.Advance() {
			m.finished = true
			return m.quit()
		}
		m.markShown()
	}
	return m.wait(m.engine.Timeout())
}

// revealing reports whether the border is still being drawn in. Words do not
// advance until it settles.
func (m *Model) revealing() bool {
	if !m.config.EnableAnimations || !borderEnabled(m.config) {
		return false
	}
	return !effects.Settled(m.clock.ElapsedMs(m.now()))
}

func (m *Model) wait(d time.Duration) tea.Cmd {
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return pacingMsg{seq: seq}
	})
}

func (m *Model) markShown() {
	if shown := m.engine.Index() + 1; shown > m.wordsShown {
		m.wordsShown = shown
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.endedAt = m.now()
	return tea.Quit
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
