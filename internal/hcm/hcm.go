// Package hcm implements the hue/chroma/minimum pivot through which every
// cross-space color conversion is routed. Each outer space (RGB, HSV, HSL,
// HSI) has exactly one encoder into the pivot and one decoder out of it, so
// every pairwise conversion is a composition of two functions and no direct
// space-to-space formula exists anywhere.
//
// All functions operate on bare float32 components in [0, 1] (hue in [0, 1),
// a full turn being 1). Callers are expected to hand in already-validated
// values; the typed wrappers in the root package guarantee this.
package hcm

import "math"

// Color is a color in the hue, chroma, minimum, alpha space.
type Color struct {
	// H is the hue in [0, 1).
	H float32
	// C is the chroma, the difference between the largest and smallest
	// RGB channel.
	C float32
	// M is the value of the smallest RGB channel.
	M float32
	// A is the alpha component.
	A float32
}

// FromRGB encodes an RGB color into the pivot.
//
// The hue is computed with the standard six-sector formula. Ties between
// equal channels resolve through a fixed comparison order (an equal pair at
// the maximum resolves to the lower channel index), so symmetric inputs
// always select the same sector. An achromatic color (all channels equal)
// has no derivable hue; it encodes as hue 0, chroma 0.
func FromRGB(r, g, b, a float32) Color {
	channels := [3]float32{r, g, b}

	// Locate the smallest and largest channel. The strict comparisons fix
	// the tie order: an equal pair at the maximum resolves to the lower
	// index.
	var iMin, iMax int
	switch {
	case channels[0] < channels[1] && channels[0] < channels[2]:
		iMin = 0
		if channels[1] < channels[2] {
			iMax = 2
		} else {
			iMax = 1
		}
	case channels[1] < channels[2]:
		iMin = 1
		if channels[0] < channels[2] {
			iMax = 2
		} else {
			iMax = 0
		}
	default:
		iMin = 2
		if channels[0] < channels[1] {
			iMax = 1
		} else {
			iMax = 0
		}
	}

	// hueMajor is the 120-degree sector pair (hue' / 2), hueMinor selects
	// the ascending or descending half of it.
	hueMajor := (iMin + 1) % 3
	hueMinor := ((iMax+3)-iMin)%3 - 1

	m := channels[iMin]
	c := channels[iMax] - m
	// x is the middle channel above the minimum: c times the hexagonal
	// sector waveform.
	x := channels[(hueMajor+(hueMinor+1)%2)%3] - m

	// Achromatic: no hue is derivable, and dividing by c would fault.
	if c == 0 {
		return Color{H: 0, C: 0, M: m, A: a}
	}

	hp := 2 * float32(hueMajor)
	if hueMinor == 0 {
		hp += x / c
	} else {
		hp += 2 - x/c
	}

	return Color{H: hp / 6, C: c, M: m, A: a}
}

// FromHSV encodes an HSV color into the pivot. The hue passes through
// unchanged.
func FromHSV(h, s, v, a float32) Color {
	c := v * s
	return Color{H: h, C: c, M: v - c, A: a}
}

// FromHSL encodes an HSL color into the pivot. The hue passes through
// unchanged.
func FromHSL(h, s, l, a float32) Color {
	c := (1 - abs(2*l-1)) * s
	return Color{H: h, C: c, M: l - 0.5*c, A: a}
}

// FromHSI encodes an HSI color into the pivot. The hue passes through
// unchanged. The denominator 1+z is never zero since the waveform z stays
// in [0, 1].
func FromHSI(h, s, i, a float32) Color {
	z := wave(6 * h)
	c := 3 * i * s / (1 + z)
	return Color{H: h, C: c, M: i * (1 - s), A: a}
}

// RGB decodes the pivot into RGB components. It inverts FromRGB exactly in
// all six sectors, and is continuous across the wrap from hue just under 1
// back to hue 0.
func (col Color) RGB() (r, g, b, a float32) {
	hp := col.H * 6
	x := col.C * wave(hp)

	// Channel values ordered for an ascending sector; a descending sector
	// swaps the two chromatic channels.
	var channels [3]float32
	if mod(hp, 2) < 1 {
		channels = [3]float32{col.C, x, 0}
	} else {
		channels = [3]float32{x, col.C, 0}
	}

	// i is the negated rotation of the red channel within the sector pair.
	i := int(hp / 2)

	r = channels[(3-i)%3] + col.M
	g = channels[(4-i)%3] + col.M
	b = channels[(5-i)%3] + col.M
	return r, g, b, col.A
}

// HSV decodes the pivot into HSV components. Pure black has no defined
// saturation; by convention it decodes to 0.
func (col Color) HSV() (h, s, v, a float32) {
	v = col.M + col.C
	if v != 0 {
		s = col.C / v
	}
	return col.H, s, v, col.A
}

// HSL decodes the pivot into HSL components. Saturation is undefined at
// pure black and pure white; both decode to 0.
func (col Color) HSL() (h, s, l, a float32) {
	l = col.M + 0.5*col.C
	if z := 1 - abs(2*l-1); z != 0 {
		s = col.C / z
	}
	return col.H, s, l, col.A
}

// HSI decodes the pivot into HSI components. Pure black has no defined
// saturation; by convention it decodes to 0.
func (col Color) HSI() (h, s, i, a float32) {
	z := wave(6 * col.H)
	i = col.M + col.C*(1+z)/3
	if i != 0 {
		s = 1 - col.M/i
	}
	return col.H, s, i, col.A
}

// wave is the hexagonal sector waveform 1 - |(hp mod 2) - 1| used by both
// the RGB decoder and the HSI formulas. It ramps 0..1..0 over every pair of
// sectors.
func wave(hp float32) float32 {
	return 1 - abs(mod(hp, 2)-1)
}

// mod is a Euclidean modulo: the result is in [0, y) for negative x too.
func mod(x, y float32) float32 {
	m := float32(math.Mod(float64(x), float64(y)))
	if m < 0 {
		m += y
	}
	return m
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
