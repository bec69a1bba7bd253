// Package effects derives animation phases from elapsed time.
//
// Every function here is pure: the same elapsed time always yields the same
// phase, so a frame can be reproduced exactly and disabling animations is a
// matter of not calling them.
package effects

import (
	"math"
	"time"

	"github.com/verte-zerg/spr/internal/palette"
)

// Animation timings, in milliseconds.
const (
	RevealMs      = 600
	ScannerLoopMs = 3000
	PulsePeriodMs = 1500
	SweepLoopMs   = 2000
)

// SweepWidth is the number of cells lit by the progress sweep.
const SweepWidth = 5

// Glow thresholds on the sweep intensity.
const (
	glowWhite  = 0.6
	glowBright = 0.2
)

// Clock anchors all animations to the start of the session.
type Clock struct {
	start time.Time
}

// NewClock returns a clock started at start.
func NewClock(start time.Time) Clock {
	return Clock{start: start}
}

// Start returns the anchor time.
func (c Clock) Start() time.Time {
	return c.start
}

// ElapsedMs returns the milliseconds between the start and now, never negative.
func (c Clock) ElapsedMs(now time.Time) int64 {
	ms := now.Sub(c.start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// RevealProgress ramps linearly from 0 to 1 over RevealMs.
func RevealProgress(elapsedMs int64) float64 {
	if elapsedMs <= 0 {
		return 0
	}
	if elapsedMs >= RevealMs {
		return 1
	}
	return float64(elapsedMs) / RevealMs
}

// Settled reports whether the border reveal has finished.
func Settled(elapsedMs int64) bool {
	return RevealProgress(elapsedMs) >= 1
}

// RevealRemaining returns how long the reveal still has to run.
func RevealRemaining(elapsedMs int64) time.Duration {
	if elapsedMs >= RevealMs {
		return 0
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	return time.Duration(RevealMs-elapsedMs) * time.Millisecond
}

// ScannerPhase is the position of the border scanner as a fraction of one lap.
func ScannerPhase(elapsedMs int64) float64 {
	return loopPhase(elapsedMs, ScannerLoopMs)
}

// ScannerPosition maps the scanner phase onto a perimeter of n cells.
func ScannerPosition(elapsedMs int64, n int) int {
	if n <= 0 {
		return 0
	}
	pos := int(ScannerPhase(elapsedMs) * float64(n))
	if pos >= n {
		pos = n - 1
	}
	return pos
}

// PulseIntensity oscillates sinusoidally between 0.9 and 1.0 with a 1.5s period.
func PulseIntensity(elapsedMs int64) float64 {
	phase := loopPhase(elapsedMs, PulsePeriodMs) * 2 * math.Pi
	return 0.95 + 0.05*math.Sin(phase)
}

// Pulse applies the pulse intensity to c. Only RGB colors are affected.
func Pulse(c palette.Color, elapsedMs int64) palette.Color {
	return palette.Scale(c, PulseIntensity(elapsedMs))
}

// SweepHead returns the fractional cell position of the sweep across a bar of
// width cells. The head enters from the left edge and leaves past the right so
// the glow fades in and out.
func SweepHead(elapsedMs int64, width int) float64 {
	half := float64(SweepWidth / 2)
	span := float64(width) + 2*half
	return loopPhase(elapsedMs, SweepLoopMs)*span - half
}

// GlowIntensity is the Gaussian falloff exp(-d²/2) for an offset d from the head.
// Cells outside the sweep width get zero.
func GlowIntensity(d float64) float64 {
	if math.Abs(d) > float64(SweepWidth)/2 {
		return 0
	}
	return math.Exp(-d * d / 2)
}

// Glow returns the color for a cell lit at the given intensity. ok is false
// when the intensity is too low to change the cell.
func Glow(base palette.Color, intensity float64) (palette.Color, bool) {
	switch {
	case intensity >= glowWhite:
		return palette.Named(palette.White), true
	case intensity >= glowBright:
		return palette.Brighten(base), true
	default:
		return base, false
	}
}

func loopPhase(elapsedMs, loopMs int64) float64 {
	if elapsedMs <= 0 {
		return 0
	}
	return float64(elapsedMs%loopMs) / float64(loopMs)
}
