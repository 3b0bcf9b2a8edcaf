package colors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBALerp(t *testing.T) {
	a := NewRGBA(0, 0, 0, 0)
	b := NewRGBA(1, 0.5, 0, 1)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))

	mid := a.Lerp(b, 0.5)
	require.InDelta(t, 0.5, mid.Red(), 1e-6)
	require.InDelta(t, 0.25, mid.Green(), 1e-6)
	require.InDelta(t, 0, mid.Blue(), 1e-6)
	require.InDelta(t, 0.5, mid.Alpha(), 1e-6)

	// Out-of-range t extrapolates but the result stays clamped.
	over := a.Lerp(b, 2)
	require.Equal(t, float32(1), over.Red())
	require.Equal(t, float32(1), over.Green())
}

func TestHueLerpShortestArc(t *testing.T) {
	// 0.9 to 0.1 is a 0.2 step through the wrap point, not a 0.8 step
	// through 0.5.
	a := NewHSV(0.9, 1, 1)
	b := NewHSV(0.1, 1, 1)

	mid := a.Lerp(b, 0.5)
	require.InDelta(t, 0, mid.Hue(), 1e-6)

	quarter := a.Lerp(b, 0.25)
	require.InDelta(t, 0.95, quarter.Hue(), 1e-6)
}

func TestHueLerpPlainArc(t *testing.T) {
	a := NewHSL(0.2, 1, 0.5)
	b := NewHSL(0.4, 1, 0.5)
	require.InDelta(t, 0.3, a.Lerp(b, 0.5).Hue(), 1e-6)
	require.InDelta(t, 0.5, a.Lerp(b, 0.5).Lightness(), 1e-6)
}

func TestHueLerpHalfTurnTie(t *testing.T) {
	// Exactly opposite hues resolve in the positive direction, always the
	// same way.
	a := NewHSIA(0.1, 1, 0.3, 1)
	b := NewHSIA(0.6, 1, 0.3, 1)

	first := a.Lerp(b, 0.5)
	require.InDelta(t, 0.35, first.Hue(), 1e-6)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, a.Lerp(b, 0.5))
	}
}
