// Package screen provides the cell buffer the reader draws each frame into.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/spr/internal/palette"
)

// Style is the foreground styling of a cell.
type Style struct {
	Fg     palette.Color
	Bold   bool
	Italic bool
}

// Cell is one grid position. An empty Symbol renders as a space.
type Cell struct {
	Symbol string
	Style  Style
	// wide marks the trailing half of a double-width symbol.
	wide bool
}

// Grid is a fixed-size buffer of styled cells. Writes outside the grid are
// dropped, so callers never need to bounds-check.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a blank grid. Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the full grid area.
func (g *Grid) Bounds() Rect {
	return Rect{W: g.width, H: g.height}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at x, y.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.width+x], true
}

// Symbol returns the symbol at x, y or "" when out of bounds or blank.
func (g *Grid) Symbol(x, y int) string {
	c, _ := g.Cell(x, y)
	return c.Symbol
}

// Set writes a single-width symbol with style.
func (g *Grid) Set(x, y int, symbol string, style Style) {
	if !g.inBounds(x, y) {
		return
	}
	i := y*g.width + x
	if g.cells[i].wide && x > 0 {
		g.cells[i-1] = Cell{}
	}
	if x+1 < g.width && g.cells[i+1].wide {
		g.cells[i+1] = Cell{}
	}
	g.cells[i] = Cell{Symbol: symbol, Style: style}
}

// SetFg changes only the foreground color of the cell at x, y.
func (g *Grid) SetFg(x, y int, fg palette.Color) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x].Style.Fg = fg
}

// Clear blanks every cell in r.
func (g *Grid) Clear(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if g.inBounds(x, y) {
				g.cells[y*g.width+x] = Cell{}
			}
		}
	}
}

// Text writes s starting at x, y and stops before column limit. Double-width
// runes take two cells and are skipped entirely if only one cell is left. It
// returns the column after the last written cell.
func (g *Grid) Text(x, y int, s string, style Style, limit int) int {
	if limit > g.width {
		limit = g.width
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		g.Set(x, y, string(r), style)
		if w == 2 && g.inBounds(x+1, y) {
			g.cells[y*g.width+x+1] = Cell{Style: style, wide: true}
		}
		x += w
	}
	return x
}

// Render converts the grid to a newline-separated string, grouping runs of
// equally styled cells into single lipgloss renders.
func (g *Grid) Render() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var runStyle Style
		run.Reset()
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.wide {
				continue
			}
			if run.Len() > 0 && c.Style != runStyle {
				out.WriteString(renderRun(run.String(), runStyle))
				run.Reset()
			}
			runStyle = c.Style
			if c.Symbol == "" {
				run.WriteByte(' ')
			} else {
				run.WriteString(c.Symbol)
			}
		}
		if run.Len() > 0 {
			out.WriteString(renderRun(run.String(), runStyle))
		}
	}
	return out.String()
}

// Lines returns the plain symbols of each row, without styling.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			switch {
			case c.wide:
			case c.Symbol == "":
				b.WriteByte(' ')
			default:
				b.WriteString(c.Symbol)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func renderRun(s string, style Style) string {
	if style == (Style{}) {
		return s
	}
	ls := lipgloss.NewStyle().Bold(style.Bold).Italic(style.Italic)
	if !style.Fg.IsDefault() {
		ls = ls.Foreground(style.Fg.Lipgloss())
	}
	return ls.Render(s)
}
