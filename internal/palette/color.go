// Package palette models terminal colors as a closed set of named colors or RGB triples.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Name identifies one of the 16 standard terminal colors.
type Name uint8

// Standard terminal colors, in ANSI index order.
const (
	Black Name = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

var names = map[string]Name{
	"black":        Black,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"magenta":      Magenta,
	"cyan":         Cyan,
	"gray":         Gray,
	"darkgray":     DarkGray,
	"lightred":     LightRed,
	"lightgreen":   LightGreen,
	"lightyellow":  LightYellow,
	"lightblue":    LightBlue,
	"lightmagenta": LightMagenta,
	"lightcyan":    LightCyan,
	"white":        White,
}

type kind uint8

const (
	kindDefault kind = iota
	kindNamed
	kindRGB
)

// Color is either the terminal default, a named color, or an RGB triple.
// The zero value is the terminal default.
type Color struct {
	kind    kind
	name    Name
	r, g, b uint8
}

// Default is the terminal's own foreground color.
var Default = Color{}

// Fallback is used when a configured color cannot be parsed.
var Fallback = Named(Cyan)

// Orange marks the paused state of the progress gauge.
var Orange = RGB(255, 165, 0)

// Named returns a named color.
func Named(n Name) Color {
	return Color{kind: kindNamed, name: n}
}

// RGB returns a true-color value.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.kind == kindDefault
}

// Name returns the color name and whether c is a named color.
func (c Color) Name() (Name, bool) {
	return c.name, c.kind == kindNamed
}

// RGB returns the channels and whether c is an RGB color.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	return c.r, c.g, c.b, c.kind == kindRGB
}

// String renders c in the same notation Parse accepts.
func (c Color) String() string {
	switch c.kind {
	case kindNamed:
		return c.name.String()
	case kindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "default"
	}
}

// Lipgloss converts c for use in a lipgloss style.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	switch c.kind {
	case kindNamed:
		return lipgloss.Color(strconv.Itoa(int(c.name)))
	case kindRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
	default:
		return lipgloss.NoColor{}
	}
}

// Parse reads a color name, "#RRGGBB", or "R,G,B". Anything else yields Fallback.
func Parse(s string) Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, ok := names[s]; ok {
		return Named(n)
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		c, err := colorful.Hex(s)
		if err != nil {
			return Fallback
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b)
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return Fallback
		}
		var ch [3]uint8
		for i, part := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return Fallback
			}
			ch[i] = uint8(v)
		}
		return RGB(ch[0], ch[1], ch[2])
	}
	return Fallback
}

const brightenOffset = 40

// Brighten returns a visibly lighter variant of c. Dark named colors step to
// their light counterpart, light ones to white, and RGB channels gain a fixed
// offset that saturates at 255.
func Brighten(c Color) Color {
	switch c.kind {
	case kindNamed:
		switch c.name {
		case Black:
			return Named(DarkGray)
		case DarkGray:
			return Named(Gray)
		case Gray:
			return Named(White)
		case Red, Green, Yellow, Blue, Magenta, Cyan:
			return Named(c.name - Red + LightRed)
		default:
			return Named(White)
		}
	case kindRGB:
		return RGB(addSat(c.r, brightenOffset), addSat(c.g, brightenOffset), addSat(c.b, brightenOffset))
	default:
		return Named(White)
	}
}

// Scale multiplies each RGB channel by intensity. Named and default colors are
// returned unchanged.
func Scale(c Color, intensity float64) Color {
	if c.kind != kindRGB {
		return c
	}
	return RGB(scaleChannel(c.r, intensity), scaleChannel(c.g, intensity), scaleChannel(c.b, intensity))
}

func addSat(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}

func scaleChannel(v uint8, intensity float64) uint8 {
	out := float64(v) * intensity
	if out <= 0 {
		return 0
	}
	if out >= 255 {
		return 255
	}
	return uint8(out)
}

// String returns the lowercase name of n.
func (n Name) String() string {
	for s, v := range names {
		if v == n {
			return s
		}
	}
	return strconv.Itoa(int(n))
}
