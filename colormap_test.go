package colors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewColorNDClamps(t *testing.T) {
	tests := []struct {
		name   string
		values []float32
		want   []float32
	}{
		{"one low", []float32{-0.2}, []float32{0}},
		{"one mid", []float32{0.2}, []float32{0.2}},
		{"one high", []float32{1.2}, []float32{1}},
		{"three low", []float32{-0.2, 0.3, 0.4}, []float32{0, 0.3, 0.4}},
		{"three mid", []float32{0.2, 0.3, 0.4}, []float32{0.2, 0.3, 0.4}},
		{"three high", []float32{0.2, 0.3, 1.4}, []float32{0.2, 0.3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewColorND(tt.values)
			require.Equal(t, len(tt.want), c.Dim())
			require.Equal(t, tt.want, c.Components())
		})
	}
}

func TestColorNDCopies(t *testing.T) {
	src := []float32{0.1, 0.2}
	c := NewColorND(src)
	src[0] = 0.9
	require.Equal(t, float32(0.1), c.Component(0))

	out := c.Components()
	out[1] = 0.9
	require.Equal(t, float32(0.2), c.Component(1))
}

func TestGrayMap(t *testing.T) {
	m := NewGrayMap(0.5)
	require.Equal(t, 1, m.Dim())

	got := m.At(NewColorND([]float32{0.25}))
	require.Equal(t, NewRGBA(0.25, 0.25, 0.25, 0.5), got.AsRGBA())

	// Alpha outside [0, 1] clamps at map construction.
	require.Equal(t, NewGrayMap(1), NewGrayMap(1.5))
}

func TestGradientMapSample(t *testing.T) {
	m := NewGradientMap([]ColorStop{
		{Offset: 0, Color: Black},
		{Offset: 1, Color: White},
	}, ExtendPad)
	require.Equal(t, 1, m.Dim())

	require.Equal(t, Black, m.Sample(0))
	require.Equal(t, White, m.Sample(1))

	mid := m.Sample(0.5)
	require.InDelta(t, 0.5, mid.Red(), tol)
	require.InDelta(t, 0.5, mid.Green(), tol)
	require.InDelta(t, 0.5, mid.Blue(), tol)

	got := m.At(NewColorND([]float32{0.5}))
	require.InDelta(t, 0.5, got.AsRGBA().Red(), tol)
}

func TestGradientMapSortsStops(t *testing.T) {
	// Stops handed over in reverse order still form the same gradient.
	m := NewGradientMap([]ColorStop{
		{Offset: 1, Color: White},
		{Offset: 0.5, Color: Red},
		{Offset: 0, Color: Black},
	}, ExtendPad)

	require.Equal(t, Red, m.Sample(0.5))
	require.InDelta(t, 0.5, m.Sample(0.25).Red(), tol)
}

func TestGradientMapExtendModes(t *testing.T) {
	stops := []ColorStop{
		{Offset: 0, Color: Black},
		{Offset: 1, Color: White},
	}

	pad := NewGradientMap(stops, ExtendPad)
	require.Equal(t, Black, pad.Sample(-0.5))
	require.Equal(t, White, pad.Sample(1.5))

	repeat := NewGradientMap(stops, ExtendRepeat)
	require.InDelta(t, 0.25, repeat.Sample(1.25).Red(), tol)
	require.InDelta(t, 0.75, repeat.Sample(-0.25).Red(), tol)

	reflect := NewGradientMap(stops, ExtendReflect)
	require.InDelta(t, 0.75, reflect.Sample(1.25).Red(), tol)
	require.InDelta(t, 0.25, reflect.Sample(-0.25).Red(), tol)
}

func TestGradientMapEmpty(t *testing.T) {
	m := NewGradientMap(nil, ExtendPad)
	require.Equal(t, Transparent, m.Sample(0.5))
}

func TestGradientMapDuplicateOffsets(t *testing.T) {
	// A hard edge: two stops at the same offset, the later one wins on the
	// far side.
	m := NewGradientMap([]ColorStop{
		{Offset: 0, Color: Black},
		{Offset: 0.5, Color: Red},
		{Offset: 0.5, Color: Blue},
		{Offset: 1, Color: White},
	}, ExtendPad)

	require.InDelta(t, 1, m.Sample(0.4999).Red(), 0.01)
	require.InDelta(t, 1, m.Sample(0.5001).Blue(), 0.01)
}

// ColorMap implementations must satisfy the interface.
var (
	_ ColorMap = GrayMap{}
	_ ColorMap = GradientMap{}
)
