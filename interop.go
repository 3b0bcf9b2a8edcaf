package colors

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// StdColor converts the color to the standard library color.Color
// interface, for handing to image.Image and friends.
func (c RGBA) StdColor() color.Color {
	return color.NRGBA{
		R: uint8(clamp(c.r, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.g, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.b, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.a, 0, 1)*255 + 0.5),
	}
}

// FromStdColor converts a standard library color.Color to RGBA. The
// channels keep the alpha premultiplication of the source color.
func FromStdColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return NewRGBAUnchecked(
		float32(r)/65535,
		float32(g)/65535,
		float32(b)/65535,
		float32(a)/65535,
	)
}

// Named looks up a color by its SVG 1.1 name ("red", "slateblue", ...).
// The boolean reports whether the name is known.
func Named(name string) (RGBA, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return FromStdColor(c), true
}
