package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/spr/internal/palette"
	"github.com/verte-zerg/spr/internal/screen"
)

const (
	helpWidth  = 44
	helpHeight = 9
	helpTitle  = " Help "
)

var (
	helpKeyStyle    = screen.Style{Fg: palette.Named(palette.Yellow), Bold: true}
	helpHeaderStyle = screen.Style{Fg: palette.Named(palette.Gray), Italic: true}
	helpDimStyle    = screen.Style{Fg: palette.Named(palette.DarkGray)}
)

type span struct {
	text  string
	style screen.Style
}

type helpLine []span

// helpLines builds the key/action table shown in the overlay.
func helpLines(keys keyMap, sepWidth int, borderColor palette.Color) []helpLine {
	if sepWidth < 0 {
		sepWidth = 0
	}
	lines := []helpLine{
		{
			{text: fmt.Sprintf("  %-12s", "Key"), style: helpHeaderStyle},
			{text: "Action", style: helpHeaderStyle},
		},
		{{text: "  " + strings.Repeat("─", sepWidth), style: screen.Style{Fg: borderColor}}},
	}
	for _, b := range keys.Bindings() {
		h := b.Help()
		lines = append(lines, helpLine{
			{text: fmt.Sprintf("  %-12s", h.Key), style: helpKeyStyle},
			{text: h.Desc},
		})
	}
	lines = append(lines,
		helpLine{},
		helpLine{{text: "  Press ? or Esc to close", style: helpDimStyle}},
	)
	return lines
}

// clampScroll limits a raw scroll offset so the last line of content is never
// scrolled above the bottom of the viewport.
func clampScroll(raw, total, visible int) int {
	maxScroll := total - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if raw < 0 {
		return 0
	}
	if raw > maxScroll {
		return maxScroll
	}
	return raw
}

// scrollHint tells which directions can still be scrolled.
func scrollHint(scroll, maxScroll int) string {
	if maxScroll <= 0 {
		return ""
	}
	switch {
	case scroll <= 0:
		return " ↓ j/k "
	case scroll >= maxScroll:
		return " ↑ j/k "
	default:
		return " ↑↓ j/k "
	}
}

// drawHelp clears a centered panel and draws the help table inside a double
// border. scroll is the raw offset; it is clamped here because the viewport
// height is only known at render time.
func drawHelp(g *screen.Grid, area screen.Rect, keys keyMap, borderColor palette.Color, scroll int) {
	popup := area.Centered(helpWidth, helpHeight)
	if popup.Empty() {
		return
	}
	g.Clear(popup)
	if popup.W < 2 || popup.H < 2 {
		return
	}

	lines := helpLines(keys, popup.W-4, borderColor)
	inner := popup.Inset(1)
	effective := clampScroll(scroll, len(lines), inner.H)
	maxScroll := len(lines) - inner.H

	drawBox(g, popup, screen.Style{Fg: borderColor})
	drawEdgeTitle(g, popup, popup.Y, helpTitle, screen.Style{Fg: borderColor, Bold: true})
	if hint := scrollHint(effective, maxScroll); hint != "" {
		drawEdgeTitle(g, popup, popup.Bottom()-1, hint, helpDimStyle)
	}

	for row := 0; row < inner.H; row++ {
		i := effective + row
		if i >= len(lines) {
			break
		}
		x := inner.X
		for _, s := range lines[i] {
			x = g.Text(x, inner.Y+row, s.text, s.style, inner.Right())
		}
	}
}

func drawBox(g *screen.Grid, r screen.Rect, style screen.Style) {
	maxX := r.Right() - 1
	maxY := r.Bottom() - 1
	for x := r.X + 1; x < maxX; x++ {
		g.Set(x, r.Y, "═", style)
		g.Set(x, maxY, "═", style)
	}
	for y := r.Y + 1; y < maxY; y++ {
		g.Set(r.X, y, "║", style)
		g.Set(maxX, y, "║", style)
	}
	g.Set(r.X, r.Y, "╔", style)
	g.Set(maxX, r.Y, "╗", style)
	g.Set(r.X, maxY, "╚", style)
	g.Set(maxX, maxY, "╝", style)
}

// drawEdgeTitle centers title on row y between the corners of r. Titles that
// do not fit are skipped.
func drawEdgeTitle(g *screen.Grid, r screen.Rect, y int, title string, style screen.Style) {
	room := r.W - 2
	w := runewidth.StringWidth(title)
	if w > room {
		return
	}
	x := r.X + 1 + (room-w)/2
	g.Text(x, y, title, style, r.Right()-1)
}
