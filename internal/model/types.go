// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/spr/internal/palette"
)

// Config is the read-only settings snapshot a reading session runs with.
type Config struct {
	WPM              int
	Inline           bool
	PreviewWords     int
	SeekStep         int
	BorderColor      palette.Color
	ProgressBarColor palette.Color
	ShowBorder       bool
	ShowProgressBar  bool
	EnableAnimations bool
}

// HistoryConfig defines filters for the history listing.
type HistoryConfig struct {
	Last  int
	Since *time.Time
}

// ReadingSession captures one finished or abandoned reading session.
type ReadingSession struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Source     string
	WPM        int
	TotalWords int
	WordsShown int
	Finished   bool
}

// SessionAggregate is a stored session as read back for reporting.
type SessionAggregate struct {
	SessionID  int64
	StartedAt  time.Time
	Source     string
	WPM        int
	TotalWords int
	WordsShown int
	Finished   bool
	DurationMs int64
}
