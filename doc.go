// Package colors models colors in the RGB, HSL, HSV and HSI spaces and
// converts between any pair of them.
//
// # Overview
//
// colors is a pure Go library for validated, device-independent color
// values. Every color is an immutable four-component float32 value (three
// channels plus alpha) created through a clamping constructor, so a color
// in hand is always in range.
//
// # Quick Start
//
//	import "github.com/RasmusBruhn/colors"
//
//	// Build a color; out-of-range components are clamped.
//	c := colors.NewRGB(0.9, 0.2, 0.1)
//
//	// Convert it to any of the other spaces.
//	hsv := colors.RGBToHSV(c)
//	hsl := colors.RGBToHSL(c)
//	hsi := colors.RGBToHSI(c)
//
// # Conversions
//
// All twelve pairwise conversions are routed through a single internal
// pivot (hue, chroma, minimum channel, alpha), one encoder and one decoder
// per space. There is no direct formula between any pair of outer spaces,
// so every direction has exactly one source of truth and round-trips stay
// within floating-point tolerance.
//
// # Validation
//
// Bounded components (channels, saturation, alpha, ...) are clamped to
// [0, 1] at construction; the hue is an angle and is wrapped into [0, 1)
// instead. Nothing is ever rejected. The NewXxxUnchecked constructors skip
// validation for callers that can prove their values are in range, such as
// the conversion engine itself.
//
// # Concurrency
//
// All values are immutable and all operations are pure functions, so
// everything in this package is safe for concurrent use without
// coordination.
package colors

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
