package tui

import (
	"math"

	"github.com/verte-zerg/spr/internal/effects"
	"github.com/verte-zerg/spr/internal/palette"
	"github.com/verte-zerg/spr/internal/screen"
)

// drawRevealBorder draws the double-line border as far as progress (0..1) allows.
// Stages: center tick on the left edge, the two third ticks, the center ticks of
// the top and bottom edges, the corners, then the horizontal runs left to right
// with the drawing head brightened. Once the runs begin, the side edges are filled.
func drawRevealBorder(g *screen.Grid, area screen.Rect, progress float64, color palette.Color) {
	if area.W < 2 || area.H < 2 {
		return
	}
	style := screen.Style{Fg: color}
	maxX := area.Right() - 1
	maxY := area.Bottom() - 1
	midY := area.Y + area.H/2
	thirdY := area.Y + area.H/3
	twoThirdY := area.Y + (area.H*2)/3

	horiz := area.W - 2
	totalStages := float64(4 + horiz)
	scaled := progress * totalStages
	stage := int(math.Floor(scaled))
	stageFrac := scaled - math.Floor(scaled)

	g.Set(area.X, midY, "┃", style)

	if stage >= 1 {
		g.Set(area.X, thirdY, "┃", style)
		g.Set(area.X, twoThirdY, "┃", style)
	}

	if stage >= 2 {
		midX := area.X + area.W/2
		g.Set(midX, area.Y, "┃", style)
		g.Set(midX, maxY, "┃", style)
	}

	if stage >= 3 {
		g.Set(area.X, area.Y, "╔", style)
		g.Set(maxX, area.Y, "╗", style)
		g.Set(area.X, maxY, "╚", style)
		g.Set(maxX, maxY, "╝", style)
	}

	if stage < 4 {
		return
	}

	drawn := horiz
	if stage < 4+horiz {
		drawn = stage - 4
		if stageFrac > 0 {
			drawn++
		}
	}
	for i := 0; i < drawn && i < horiz; i++ {
		x := area.X + 1 + i
		lineStyle := style
		if i == drawn-1 && drawn < horiz {
			lineStyle.Fg = palette.Brighten(color)
		}
		g.Set(x, area.Y, "═", lineStyle)
		g.Set(x, maxY, "═", lineStyle)
	}

	for y := area.Y + 1; y < maxY; y++ {
		if y != midY && y != thirdY && y != twoThirdY {
			g.Set(area.X, y, "║", style)
		}
		g.Set(maxX, y, "║", style)
	}
}

// drawBorderScanner brightens the one border cell under the scanner head. The
// head travels clockwise: top edge, right edge, bottom edge, left edge.
func drawBorderScanner(g *screen.Grid, area screen.Rect, elapsedMs int64, color palette.Color) {
	if area.W < 2 || area.H < 2 {
		return
	}
	maxX := area.Right() - 1
	maxY := area.Bottom() - 1
	perimeter := (area.W-2)*2 + (area.H-2)*2
	if perimeter == 0 {
		return
	}
	head := effects.ScannerPosition(elapsedMs, perimeter)
	glow := palette.Brighten(color)

	pos := 0
	mark := func(x, y int) {
		if pos == head {
			g.SetFg(x, y, glow)
		}
		pos++
	}
	for x := area.X + 1; x < maxX; x++ {
		mark(x, area.Y)
	}
	for y := area.Y + 1; y < maxY; y++ {
		mark(maxX, y)
	}
	for x := maxX - 1; x > area.X; x-- {
		mark(x, maxY)
	}
	for y := maxY - 1; y > area.Y; y-- {
		mark(area.X, y)
	}
}
