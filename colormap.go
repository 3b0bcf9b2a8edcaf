package colors

import (
	"math"
	"sort"
)

// ColorND is a generic n-dimensional color. Every component is clamped to
// [0, 1] at construction. It carries no conversion logic of its own; a
// ColorMap gives its components meaning.
type ColorND struct {
	values []float32
}

// NewColorND returns the n-dimensional color with the given components,
// each clamped to [0, 1]. The slice is copied.
func NewColorND(values []float32) ColorND {
	vs := make([]float32, len(values))
	for i, v := range values {
		vs[i] = clamp(v, 0, 1)
	}
	return ColorND{values: vs}
}

// Dim returns the number of components.
func (c ColorND) Dim() int { return len(c.values) }

// Component returns the i'th component.
func (c ColorND) Component(i int) float32 { return c.values[i] }

// Components returns a copy of all components.
func (c ColorND) Components() []float32 {
	return append([]float32(nil), c.values...)
}

// ColorMap converts an n-dimensional color into a displayable color.
type ColorMap interface {
	// Dim is the dimension the map expects its input colors to have.
	Dim() int
	// At returns the color at the given coordinate. The coordinate's
	// dimension must equal Dim().
	At(c ColorND) Color
}

// GrayMap maps a one-dimensional color onto the gray spectrum.
type GrayMap struct {
	a float32
}

// NewGrayMap returns a gray map producing colors with the given alpha,
// clamped to [0, 1].
func NewGrayMap(a float32) GrayMap {
	return GrayMap{a: clamp(a, 0, 1)}
}

// Dim returns 1.
func (m GrayMap) Dim() int { return 1 }

// At maps the single component onto a gray color with the map's alpha.
func (m GrayMap) At(c ColorND) Color {
	assert(c.Dim() == 1, "colors: gray map expects a one-dimensional color")
	return NewGrayUnchecked(c.Component(0), m.a)
}

// ExtendMode defines how a gradient map extends beyond its [0, 1] domain.
type ExtendMode int

const (
	// ExtendPad clamps out-of-range coordinates to the edge colors.
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop is a color at a specific position along a gradient.
type ColorStop struct {
	Offset float32 // Position in the gradient, 0 to 1
	Color  RGBA    // Color at this position
}

// GradientMap maps a one-dimensional color onto a gradient between color
// stops.
type GradientMap struct {
	stops  []ColorStop
	extend ExtendMode
}

// NewGradientMap builds a gradient map from the given stops. The stops are
// copied and sorted by offset. A map with no stops samples transparent
// everywhere.
func NewGradientMap(stops []ColorStop, extend ExtendMode) GradientMap {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	if !sort.SliceIsSorted(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	}) {
		Logger().Debug("colors: sorting gradient stops by offset",
			"stops", len(sorted))
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Offset < sorted[j].Offset
		})
	}

	return GradientMap{stops: sorted, extend: extend}
}

// Dim returns 1.
func (m GradientMap) Dim() int { return 1 }

// At samples the gradient at the single component of the coordinate.
func (m GradientMap) At(c ColorND) Color {
	assert(c.Dim() == 1, "colors: gradient map expects a one-dimensional color")
	return m.Sample(c.Component(0))
}

// Sample returns the gradient color at position t. Positions outside [0, 1]
// are brought into range by the map's extend mode, then the two neighboring
// stops are interpolated linearly.
func (m GradientMap) Sample(t float32) RGBA {
	if len(m.stops) == 0 {
		return Transparent
	}

	t = applyExtendMode(t, m.extend)

	first := m.stops[0]
	if t <= first.Offset {
		return first.Color
	}
	last := m.stops[len(m.stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(m.stops); i++ {
		if t <= m.stops[i].Offset {
			lo, hi := m.stops[i-1], m.stops[i]
			span := hi.Offset - lo.Offset
			if span == 0 {
				return hi.Color
			}
			return lo.Color.Lerp(hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}

// applyExtendMode brings t into [0, 1] according to the extend mode.
func applyExtendMode(t float32, mode ExtendMode) float32 {
	switch mode {
	case ExtendRepeat:
		t -= float32(math.Floor(float64(t)))
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = float32(math.Abs(float64(t)))
		period := float32(math.Floor(float64(t)))
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp(t, 0, 1)
	}
	return t
}
