package tui

import (
	"fmt"

	"github.com/verte-zerg/spr/internal/effects"
	"github.com/verte-zerg/spr/internal/palette"
	"github.com/verte-zerg/spr/internal/screen"
)

const gaugeSymbol = "━"

var gaugeUnfilled = screen.Style{Fg: palette.Named(palette.DarkGray)}

// progressColor is orange while paused, pulsed while playing with animations,
// and the configured color otherwise.
func progressColor(base palette.Color, paused, animate bool, elapsedMs int64) palette.Color {
	switch {
	case paused:
		return palette.Orange
	case animate:
		return effects.Pulse(base, elapsedMs)
	default:
		return base
	}
}

func progressLabel(index, total int, paused bool) string {
	glyph := "▶"
	if paused {
		glyph = "⏸"
	}
	return fmt.Sprintf("%s %d/%d", glyph, index+1, total)
}

// drawProgress renders the label followed by a line gauge filled to
// (index+1)/total. It returns the gauge bar area, which may be empty.
func drawProgress(g *screen.Grid, row screen.Rect, index, total int, paused bool, color palette.Color) screen.Rect {
	if row.Empty() || total <= 0 {
		return screen.Rect{}
	}
	x := g.Text(row.X, row.Y, progressLabel(index, total, paused), screen.Style{}, row.Right())
	x++
	bar := screen.Rect{X: x, Y: row.Y, W: row.Right() - x, H: 1}
	if bar.Empty() {
		return screen.Rect{}
	}
	ratio := float64(index+1) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(bar.W))
	filledStyle := screen.Style{Fg: color, Bold: true}
	for i := 0; i < bar.W; i++ {
		style := gaugeUnfilled
		if i < filled {
			style = filledStyle
		}
		g.Set(bar.X+i, bar.Y, gaugeSymbol, style)
	}
	return bar
}

// drawSweep runs a glow across bar. Cells near the head turn white, cells at
// the edge of the glow get a brightened version of their own color.
func drawSweep(g *screen.Grid, bar screen.Rect, elapsedMs int64) {
	if bar.Empty() {
		return
	}
	head := effects.SweepHead(elapsedMs, bar.W)
	for i := 0; i < bar.W; i++ {
		intensity := effects.GlowIntensity(float64(i) - head)
		if intensity == 0 {
			continue
		}
		cell, ok := g.Cell(bar.X+i, bar.Y)
		if !ok {
			continue
		}
		if c, lit := effects.Glow(cell.Style.Fg, intensity); lit {
			g.SetFg(bar.X+i, bar.Y, c)
		}
	}
}
