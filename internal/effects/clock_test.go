package effects

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/spr/internal/palette"
)

func TestElapsedMs(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewClock(start)
	require.Equal(t, int64(0), c.ElapsedMs(start.Add(-time.Second)))
	require.Equal(t, int64(1500), c.ElapsedMs(start.Add(1500*time.Millisecond)))
}

func TestRevealProgress(t *testing.T) {
	require.Equal(t, 0.0, RevealProgress(0))
	require.InDelta(t, 0.5, RevealProgress(300), 1e-9)
	require.Equal(t, 1.0, RevealProgress(600))
	require.Equal(t, 1.0, RevealProgress(10_000))
	require.False(t, Settled(599))
	require.True(t, Settled(600))
	require.Equal(t, 100*time.Millisecond, RevealRemaining(500))
	require.Equal(t, time.Duration(0), RevealRemaining(700))
}

func TestScannerLoops(t *testing.T) {
	require.Equal(t, 0.0, ScannerPhase(0))
	require.InDelta(t, 0.5, ScannerPhase(1500), 1e-9)
	require.Equal(t, ScannerPhase(700), ScannerPhase(700+3*ScannerLoopMs))
	require.Equal(t, 5, ScannerPosition(1500, 10))
	require.Equal(t, 0, ScannerPosition(1500, 0))
}

func TestPulseIntensityRange(t *testing.T) {
	for ms := int64(0); ms < 2*PulsePeriodMs; ms += 25 {
		v := PulseIntensity(ms)
		require.GreaterOrEqual(t, v, 0.9-1e-9)
		require.LessOrEqual(t, v, 1.0+1e-9)
	}
	require.InDelta(t, 1.0, PulseIntensity(PulsePeriodMs/4), 1e-9)
	require.InDelta(t, 0.9, PulseIntensity(3*PulsePeriodMs/4), 1e-9)
}

func TestPulseLeavesNamedColors(t *testing.T) {
	require.Equal(t, palette.Named(palette.Green), Pulse(palette.Named(palette.Green), 1125))
	require.Equal(t, palette.RGB(95, 57, 190), Pulse(palette.RGB(100, 60, 200), 0))
	require.Equal(t, palette.RGB(100, 60, 200), Pulse(palette.RGB(100, 60, 200), PulsePeriodMs/4))
}

func TestPhasesAreDeterministic(t *testing.T) {
	for _, ms := range []int64{0, 1, 599, 1234, 98765} {
		require.Equal(t, RevealProgress(ms), RevealProgress(ms))
		require.Equal(t, ScannerPhase(ms), ScannerPhase(ms))
		require.Equal(t, PulseIntensity(ms), PulseIntensity(ms))
		require.Equal(t, SweepHead(ms, 30), SweepHead(ms, 30))
	}
}

func TestSweepHeadSpan(t *testing.T) {
	require.Equal(t, -2.0, SweepHead(0, 20))
	require.InDelta(t, 10.0, SweepHead(SweepLoopMs/2, 20), 1e-9)
}

func TestGlowThresholds(t *testing.T) {
	base := palette.RGB(60, 100, 100)

	c, ok := Glow(base, GlowIntensity(0))
	require.True(t, ok)
	require.Equal(t, palette.Named(palette.White), c)

	c, ok = Glow(base, GlowIntensity(1))
	require.True(t, ok)
	require.Equal(t, palette.Named(palette.White), c, "exp(-0.5) is above the white threshold")

	c, ok = Glow(base, GlowIntensity(1.5))
	require.True(t, ok)
	require.Equal(t, palette.Brighten(base), c)

	_, ok = Glow(base, GlowIntensity(2))
	require.False(t, ok)

	require.Equal(t, 0.0, GlowIntensity(3))
	require.InDelta(t, math.Exp(-0.5), GlowIntensity(-1), 1e-12)
}
