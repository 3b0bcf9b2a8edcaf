package colors

// Lerp performs linear interpolation between two colors. The result is
// clamped, so t outside [0, 1] extrapolates up to the channel limits.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return NewRGBA(
		lerp(c.r, other.r, t),
		lerp(c.g, other.g, t),
		lerp(c.b, other.b, t),
		lerp(c.a, other.a, t),
	)
}

// Lerp performs linear interpolation between two colors. The hue travels
// the shortest arc around the hue circle.
func (c HSLA) Lerp(other HSLA, t float32) HSLA {
	return NewHSLA(
		lerpHue(c.h, other.h, t),
		lerp(c.s, other.s, t),
		lerp(c.l, other.l, t),
		lerp(c.a, other.a, t),
	)
}

// Lerp performs linear interpolation between two colors. The hue travels
// the shortest arc around the hue circle.
func (c HSVA) Lerp(other HSVA, t float32) HSVA {
	return NewHSVA(
		lerpHue(c.h, other.h, t),
		lerp(c.s, other.s, t),
		lerp(c.v, other.v, t),
		lerp(c.a, other.a, t),
	)
}

// Lerp performs linear interpolation between two colors. The hue travels
// the shortest arc around the hue circle.
func (c HSIA) Lerp(other HSIA, t float32) HSIA {
	return NewHSIA(
		lerpHue(c.h, other.h, t),
		lerp(c.s, other.s, t),
		lerp(c.i, other.i, t),
		lerp(c.a, other.a, t),
	)
}
