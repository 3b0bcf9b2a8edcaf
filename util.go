package colors

import "math"

// clamp restricts value to [min, max]. min must not exceed max; this
// precondition is checked only in builds with the colorsdebug tag.
func clamp[T float32 | float64](value, min, max T) T {
	assert(min <= max, "colors: clamp called with min > max")

	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// mod1 wraps x into [0, 1), with a non-negative result for negative inputs.
// Hue is periodic rather than bounded, so wrapping keeps -0.25 and 0.75 the
// same angle where clamping would not.
func mod1(x float32) float32 {
	m := float32(math.Mod(float64(x), 1))
	if m < 0 {
		m++
	}
	// A tiny negative input can round up to exactly 1 in float32.
	if m == 1 {
		m = 0
	}
	return m
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// lerpHue interpolates between two hues along the shortest arc of the hue
// circle, so 0.9 to 0.1 passes through 0 rather than 0.5. Hues exactly half
// a turn apart take the positive direction.
func lerpHue(a, b, t float32) float32 {
	d := mod1(b - a)
	if d > 0.5 {
		d--
	}
	return mod1(a + d*t)
}
