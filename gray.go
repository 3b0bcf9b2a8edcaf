package colors

// Gray is a color in the gray spectrum: value 0 is black, 1 is white.
type Gray struct {
	v, a float32
}

// NewGrayAlpha returns the gray color with the given value and alpha, each
// clamped to [0, 1].
func NewGrayAlpha(v, a float32) Gray {
	return Gray{
		v: clamp(v, 0, 1),
		a: clamp(a, 0, 1),
	}
}

// NewGray is NewGrayAlpha with the alpha component set to 1.
func NewGray(v float32) Gray {
	return NewGrayAlpha(v, 1)
}

// NewGrayUnchecked returns the gray color with the components stored
// verbatim. The caller must guarantee both are already in [0, 1].
func NewGrayUnchecked(v, a float32) Gray {
	return Gray{v: v, a: a}
}

// Value returns the gray value.
func (c Gray) Value() float32 { return c.v }

// Alpha returns the alpha component.
func (c Gray) Alpha() float32 { return c.a }

// AsRGBA expands the gray value to identical red, green and blue channels.
func (c Gray) AsRGBA() RGBA {
	return NewRGBAUnchecked(c.v, c.v, c.v, c.a)
}
