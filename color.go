package colors

// RGBA is a color in the RGB space with an alpha channel. Every component is
// in [0, 1].
type RGBA struct {
	r, g, b, a float32
}

// NewRGBA returns the color with the given red, green, blue and alpha
// components, each clamped to [0, 1].
func NewRGBA(r, g, b, a float32) RGBA {
	return RGBA{
		r: clamp(r, 0, 1),
		g: clamp(g, 0, 1),
		b: clamp(b, 0, 1),
		a: clamp(a, 0, 1),
	}
}

// NewRGB is NewRGBA with the alpha component set to 1.
func NewRGB(r, g, b float32) RGBA {
	return NewRGBA(r, g, b, 1)
}

// NewRGBAUnchecked returns the color with the components stored verbatim.
// The caller must guarantee every component is already in [0, 1]; the
// conversion engine uses this where the math provably stays in range, and
// any out-of-range component makes downstream conversions undefined.
func NewRGBAUnchecked(r, g, b, a float32) RGBA {
	return RGBA{r: r, g: g, b: b, a: a}
}

// Red returns the red component.
func (c RGBA) Red() float32 { return c.r }

// Green returns the green component.
func (c RGBA) Green() float32 { return c.g }

// Blue returns the blue component.
func (c RGBA) Blue() float32 { return c.b }

// Alpha returns the alpha component.
func (c RGBA) Alpha() float32 { return c.a }

// Components returns all components in the order red, green, blue, alpha.
func (c RGBA) Components() [4]float32 {
	return [4]float32{c.r, c.g, c.b, c.a}
}

// HSLA is a color in the HSL space with an alpha channel. The hue is in
// [0, 1), a full turn being 1; the other components are in [0, 1].
type HSLA struct {
	h, s, l, a float32
}

// NewHSLA returns the color with the given hue, saturation, lightness and
// alpha components. The hue is wrapped into [0, 1) (it is an angle, so -0.25
// and 0.75 are the same hue); the other components are clamped to [0, 1].
func NewHSLA(h, s, l, a float32) HSLA {
	return HSLA{
		h: mod1(h),
		s: clamp(s, 0, 1),
		l: clamp(l, 0, 1),
		a: clamp(a, 0, 1),
	}
}

// NewHSL is NewHSLA with the alpha component set to 1.
func NewHSL(h, s, l float32) HSLA {
	return NewHSLA(h, s, l, 1)
}

// NewHSLAUnchecked returns the color with the components stored verbatim.
// The caller must guarantee the hue is in [0, 1) and the other components
// are in [0, 1].
func NewHSLAUnchecked(h, s, l, a float32) HSLA {
	return HSLA{h: h, s: s, l: l, a: a}
}

// Hue returns the hue component.
func (c HSLA) Hue() float32 { return c.h }

// Saturation returns the saturation component.
func (c HSLA) Saturation() float32 { return c.s }

// Lightness returns the lightness component.
func (c HSLA) Lightness() float32 { return c.l }

// Alpha returns the alpha component.
func (c HSLA) Alpha() float32 { return c.a }

// Components returns all components in the order hue, saturation,
// lightness, alpha.
func (c HSLA) Components() [4]float32 {
	return [4]float32{c.h, c.s, c.l, c.a}
}

// HSVA is a color in the HSV space with an alpha channel. The hue is in
// [0, 1), a full turn being 1; the other components are in [0, 1].
type HSVA struct {
	h, s, v, a float32
}

// NewHSVA returns the color with the given hue, saturation, value and alpha
// components. The hue is wrapped into [0, 1); the other components are
// clamped to [0, 1].
func NewHSVA(h, s, v, a float32) HSVA {
	return HSVA{
		h: mod1(h),
		s: clamp(s, 0, 1),
		v: clamp(v, 0, 1),
		a: clamp(a, 0, 1),
	}
}

// NewHSV is NewHSVA with the alpha component set to 1.
func NewHSV(h, s, v float32) HSVA {
	return NewHSVA(h, s, v, 1)
}

// NewHSVAUnchecked returns the color with the components stored verbatim.
// The caller must guarantee the hue is in [0, 1) and the other components
// are in [0, 1].
func NewHSVAUnchecked(h, s, v, a float32) HSVA {
	return HSVA{h: h, s: s, v: v, a: a}
}

// Hue returns the hue component.
func (c HSVA) Hue() float32 { return c.h }

// Saturation returns the saturation component.
func (c HSVA) Saturation() float32 { return c.s }

// Value returns the value component.
func (c HSVA) Value() float32 { return c.v }

// Alpha returns the alpha component.
func (c HSVA) Alpha() float32 { return c.a }

// Components returns all components in the order hue, saturation, value,
// alpha.
func (c HSVA) Components() [4]float32 {
	return [4]float32{c.h, c.s, c.v, c.a}
}

// HSIA is a color in the HSI space with an alpha channel. The hue is in
// [0, 1), a full turn being 1; the other components are in [0, 1].
type HSIA struct {
	h, s, i, a float32
}

// NewHSIA returns the color with the given hue, saturation, intensity and
// alpha components. The hue is wrapped into [0, 1); the other components
// are clamped to [0, 1].
func NewHSIA(h, s, i, a float32) HSIA {
	return HSIA{
		h: mod1(h),
		s: clamp(s, 0, 1),
		i: clamp(i, 0, 1),
		a: clamp(a, 0, 1),
	}
}

// NewHSI is NewHSIA with the alpha component set to 1.
func NewHSI(h, s, i float32) HSIA {
	return NewHSIA(h, s, i, 1)
}

// NewHSIAUnchecked returns the color with the components stored verbatim.
// The caller must guarantee the hue is in [0, 1) and the other components
// are in [0, 1].
func NewHSIAUnchecked(h, s, i, a float32) HSIA {
	return HSIA{h: h, s: s, i: i, a: a}
}

// Hue returns the hue component.
func (c HSIA) Hue() float32 { return c.h }

// Saturation returns the saturation component.
func (c HSIA) Saturation() float32 { return c.s }

// Intensity returns the intensity component.
func (c HSIA) Intensity() float32 { return c.i }

// Alpha returns the alpha component.
func (c HSIA) Alpha() float32 { return c.a }

// Components returns all components in the order hue, saturation,
// intensity, alpha.
func (c HSIA) Components() [4]float32 {
	return [4]float32{c.h, c.s, c.i, c.a}
}

// Color is implemented by anything that can express itself as an RGBA
// color. It is the capability the gray color and the color maps plug into,
// so downstream code can render any of them without knowing the concrete
// space.
type Color interface {
	AsRGBA() RGBA
}

// Common colors.
var (
	Black       = NewRGB(0, 0, 0)
	White       = NewRGB(1, 1, 1)
	Red         = NewRGB(1, 0, 0)
	Green       = NewRGB(0, 1, 0)
	Blue        = NewRGB(0, 0, 1)
	Yellow      = NewRGB(1, 1, 0)
	Cyan        = NewRGB(0, 1, 1)
	Magenta     = NewRGB(1, 0, 1)
	Transparent = NewRGBA(0, 0, 0, 0)
)
