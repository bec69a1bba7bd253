package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/spr/internal/effects"
	"github.com/verte-zerg/spr/internal/model"
	"github.com/verte-zerg/spr/internal/palette"
	"github.com/verte-zerg/spr/internal/screen"
	"github.com/verte-zerg/spr/internal/text"
)

var (
	focusStyle   = screen.Style{Fg: palette.Named(palette.Red), Bold: true}
	previewStyle = screen.Style{Fg: palette.Named(palette.DarkGray)}
)

// frame is everything the compositor needs to draw one screen. It is built
// fresh for every render and never mutated by drawing.
type frame struct {
	word       string
	preview    []string
	index      int
	total      int
	paused     bool
	elapsedMs  int64
	help       bool
	helpScroll int
}

// compose draws f into g. Nothing here keeps state between frames: every
// animation is derived from f.elapsedMs.
func compose(g *screen.Grid, cfg model.Config, keys keyMap, f frame) {
	area := g.Bounds()
	if area.Empty() {
		return
	}

	content := area
	if borderEnabled(cfg) {
		content = area.Inset(1)
		switch {
		case !cfg.EnableAnimations:
			drawRevealBorder(g, area, 1, cfg.BorderColor)
		case !effects.Settled(f.elapsedMs):
			drawRevealBorder(g, area, effects.RevealProgress(f.elapsedMs), cfg.BorderColor)
		default:
			drawRevealBorder(g, area, 1, cfg.BorderColor)
			drawBorderScanner(g, area, f.elapsedMs, cfg.BorderColor)
		}
	}

	wordRow, progressRow := layoutRows(content, cfg.ShowProgressBar)
	if !wordRow.Empty() {
		drawWord(g, wordRow, f.word, f.preview)
	}
	if cfg.ShowProgressBar && !progressRow.Empty() {
		color := progressColor(cfg.ProgressBarColor, f.paused, cfg.EnableAnimations, f.elapsedMs)
		bar := drawProgress(g, progressRow, f.index, f.total, f.paused, color)
		if cfg.EnableAnimations && !f.paused {
			drawSweep(g, bar, f.elapsedMs)
		}
	}

	if f.help {
		drawHelp(g, area, keys, cfg.BorderColor, f.helpScroll)
	}
}

// borderEnabled reports whether the animated border is part of the layout.
// The border frames the inline region only.
func borderEnabled(cfg model.Config) bool {
	return cfg.Inline && cfg.ShowBorder
}

// layoutRows centers the word row vertically in content, with the progress row
// below it: one blank row apart when there is room, adjacent otherwise.
func layoutRows(content screen.Rect, showProgress bool) (word, progress screen.Rect) {
	if content.Empty() {
		return screen.Rect{}, screen.Rect{}
	}
	if !showProgress || content.H < 2 {
		return content.Row(content.Y + (content.H-1)/2), screen.Rect{}
	}
	gap := 0
	if content.H >= 4 {
		gap = 1
	}
	block := 2 + gap
	top := content.Y + (content.H-block)/2
	return content.Row(top), content.Row(top + 1 + gap)
}

// drawWord places word so its focus rune lands on the middle column of row,
// followed by the dimmed preview words.
func drawWord(g *screen.Grid, row screen.Rect, word string, preview []string) {
	if word == "" {
		return
	}
	before, focus, after := text.SplitFocus(word)
	pad := row.W/2 - runewidth.StringWidth(before)
	if pad < 0 {
		pad = 0
	}
	limit := row.Right()
	x := g.Text(row.X+pad, row.Y, before, screen.Style{}, limit)
	x = g.Text(x, row.Y, focus, focusStyle, limit)
	x = g.Text(x, row.Y, after, screen.Style{}, limit)
	for _, w := range preview {
		x = g.Text(x, row.Y, " "+w, previewStyle, limit)
	}
}
