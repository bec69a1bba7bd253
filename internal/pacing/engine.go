// Package pacing decides when the reader moves on to the next word.
package pacing

import (
	"time"

	"github.com/verte-zerg/spr/internal/text"
)

// PunctuationDwell is the extra wait after a word that ends a sentence.
const PunctuationDwell = 500 * time.Millisecond

// Engine owns the word sequence and the advance deadline.
type Engine struct {
	words    []string
	index    int
	paused   bool
	wpm      int
	deadline time.Time
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New builds an engine positioned on the first word. words must be non-empty
// and wpm positive.
func New(words []string, wpm int, opts ...Option) (*Engine, error) {
	if len(words) == 0 {
		return nil, text.ErrEmptyInput
	}
	if wpm <= 0 {
		wpm = 1
	}
	e := &Engine{
		words: append([]string(nil), words...),
		wpm:   wpm,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resetDeadline()
	return e, nil
}

// Interval is the base time each word stays on screen.
func (e *Engine) Interval() time.Duration {
	return time.Duration(float64(time.Minute) / float64(e.wpm))
}

// Current returns the word on screen. ok is false once the sequence is exhausted.
func (e *Engine) Current() (word string, ok bool) {
	if e.index >= len(e.words) {
		return "", false
	}
	return e.words[e.index], true
}

// Upcoming returns up to n words after the current one.
func (e *Engine) Upcoming(n int) []string {
	if n <= 0 || e.index+1 >= len(e.words) {
		return nil
	}
	end := e.index + 1 + n
	if end > len(e.words) {
		end = len(e.words)
	}
	return e.words[e.index+1 : end]
}

// Index returns the zero-based position of the current word.
func (e *Engine) Index() int {
	return e.index
}

// Total returns the number of words in the sequence.
func (e *Engine) Total() int {
	return len(e.words)
}

// WPM returns the configured rate.
func (e *Engine) WPM() int {
	return e.wpm
}

// Paused reports whether advancement is frozen.
func (e *Engine) Paused() bool {
	return e.paused
}

// Done reports whether the sequence has been exhausted.
func (e *Engine) Done() bool {
	return e.index >= len(e.words)
}

// TogglePause flips the pause flag. Resuming starts a full interval from now;
// time left over from before the pause is discarded.
func (e *Engine) TogglePause() {
	e.paused = !e.paused
	if !e.paused {
		e.resetDeadline()
	}
}

// Seek moves by delta words, clamped to the sequence, and restarts the interval.
func (e *Engine) Seek(delta int) {
	last := len(e.words) - 1
	idx := e.index + delta
	if delta > 0 && idx < e.index {
		idx = last
	}
	if delta < 0 && idx > e.index {
		idx = 0
	}
	if idx < 0 {
		idx = 0
	}
	if idx > last {
		idx = last
	}
	e.index = idx
	e.resetDeadline()
}

// ShouldAdvance reports whether the deadline has passed and the reader is playing.
func (e *Engine) ShouldAdvance() bool {
	if e.paused || e.Done() {
		return false
	}
	return !e.now().Before(e.deadline)
}

// Advance moves to the next word. It returns false when there is no next word,
// leaving the engine exhausted.
func (e *Engine) Advance() bool {
	if e.Done() {
		return false
	}
	e.index++
	if e.index >= len(e.words) {
		e.index = len(e.words)
		return false
	}
	e.resetDeadline()
	return true
}

// Timeout is how long to wait before checking the deadline again: the time left
// until the deadline plus the dwell for sentence-ending punctuation.
func (e *Engine) Timeout() time.Duration {
	remaining := e.deadline.Sub(e.now())
	if remaining < 0 {
		remaining = 0
	}
	word, ok := e.Current()
	if ok && EndsSentence(word) {
		remaining += PunctuationDwell
	}
	return remaining
}

// EndsSentence reports whether word ends with . ! ? or ;.
func EndsSentence(word string) bool {
	if word == "" {
		return false
	}
	switch word[len(word)-1] {
	case '.', '!', '?', ';':
		return true
	default:
		return false
	}
}

func (e *Engine) resetDeadline() {
	e.deadline = e.now().Add(e.Interval())
}
