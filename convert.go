package colors

import "github.com/RasmusBruhn/colors/internal/hcm"

// Every conversion below is routed through the hue/chroma/minimum pivot in
// internal/hcm: encode the source space, decode the target space. No direct
// space-to-space formula exists, so each direction's math has a single
// source of truth and a future fifth space needs one encoder and one
// decoder, not eight new pairwise functions.
//
// The pivot provably keeps validated inputs in range, which is why the
// results go through the unchecked constructors.

// RGBToHSV converts a color from RGB to HSV space.
func RGBToHSV(c RGBA) HSVA {
	return NewHSVAUnchecked(hcm.FromRGB(c.r, c.g, c.b, c.a).HSV())
}

// RGBToHSL converts a color from RGB to HSL space.
func RGBToHSL(c RGBA) HSLA {
	return NewHSLAUnchecked(hcm.FromRGB(c.r, c.g, c.b, c.a).HSL())
}

// RGBToHSI converts a color from RGB to HSI space.
func RGBToHSI(c RGBA) HSIA {
	return NewHSIAUnchecked(hcm.FromRGB(c.r, c.g, c.b, c.a).HSI())
}

// HSVToRGB converts a color from HSV to RGB space.
func HSVToRGB(c HSVA) RGBA {
	return NewRGBAUnchecked(hcm.FromHSV(c.h, c.s, c.v, c.a).RGB())
}

// HSVToHSL converts a color from HSV to HSL space.
func HSVToHSL(c HSVA) HSLA {
	return NewHSLAUnchecked(hcm.FromHSV(c.h, c.s, c.v, c.a).HSL())
}

// HSVToHSI converts a color from HSV to HSI space.
func HSVToHSI(c HSVA) HSIA {
	return NewHSIAUnchecked(hcm.FromHSV(c.h, c.s, c.v, c.a).HSI())
}

// HSLToRGB converts a color from HSL to RGB space.
func HSLToRGB(c HSLA) RGBA {
	return NewRGBAUnchecked(hcm.FromHSL(c.h, c.s, c.l, c.a).RGB())
}

// HSLToHSV converts a color from HSL to HSV space.
func HSLToHSV(c HSLA) HSVA {
	return NewHSVAUnchecked(hcm.FromHSL(c.h, c.s, c.l, c.a).HSV())
}

// HSLToHSI converts a color from HSL to HSI space.
func HSLToHSI(c HSLA) HSIA {
	return NewHSIAUnchecked(hcm.FromHSL(c.h, c.s, c.l, c.a).HSI())
}

// HSIToRGB converts a color from HSI to RGB space.
func HSIToRGB(c HSIA) RGBA {
	return NewRGBAUnchecked(hcm.FromHSI(c.h, c.s, c.i, c.a).RGB())
}

// HSIToHSV converts a color from HSI to HSV space.
func HSIToHSV(c HSIA) HSVA {
	return NewHSVAUnchecked(hcm.FromHSI(c.h, c.s, c.i, c.a).HSV())
}

// HSIToHSL converts a color from HSI to HSL space.
func HSIToHSL(c HSIA) HSLA {
	return NewHSLAUnchecked(hcm.FromHSI(c.h, c.s, c.i, c.a).HSL())
}

// AsRGBA returns the color itself.
func (c RGBA) AsRGBA() RGBA { return c }

// AsRGBA converts the color to RGB space.
func (c HSLA) AsRGBA() RGBA { return HSLToRGB(c) }

// AsRGBA converts the color to RGB space.
func (c HSVA) AsRGBA() RGBA { return HSVToRGB(c) }

// AsRGBA converts the color to RGB space.
func (c HSIA) AsRGBA() RGBA { return HSIToRGB(c) }
