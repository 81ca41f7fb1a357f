package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseColor for malformed or out-of-range input.
var ErrInvalidColor = errors.New("invalid color")

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color as "#RRGGBB".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBAColor represents an RGBA color with 8-bit, non-premultiplied components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// ParseColor parses a color given either as three space-separated integers
// "R G B" (each 0-255) or as a hex string "#RRGGBB" (or short "#RGB").
//
// The first form is what the interactive prompt asks for; the hex form is
// accepted for flags and tool arguments. Any other input, a wrong number of
// components, or a component outside 0-255 returns an error wrapping
// ErrInvalidColor.
func ParseColor(s string) (RGBColor, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 && len(s) != 4 {
			return RGBColor{}, fmt.Errorf("%w: %q: want #RRGGBB or #RGB", ErrInvalidColor, s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBColor{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		r, g, b := c.RGB255()
		return RGBColor{R: r, G: g, B: b}, nil
	}

	parts := strings.Split(s, " ")
	if len(parts) != 3 {
		return RGBColor{}, fmt.Errorf("%w: %q: want 3 components, got %d", ErrInvalidColor, s, len(parts))
	}
	var v [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return RGBColor{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		if n < 0 || n > 255 {
			return RGBColor{}, fmt.Errorf("%w: %q: component %d out of range 0-255", ErrInvalidColor, s, n)
		}
		v[i] = uint8(n)
	}
	return RGBColor{R: v[0], G: v[1], B: v[2]}, nil
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// Components are reported non-premultiplied, the same way the compositor
// reads them, so the RGB value can be used directly as a chroma key.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	rgb := RGBColor{R: c.R, G: c.G, B: c.B}

	return &ColorResult{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  rgbToHSL(rgb),
	}, nil
}

// rgbToHSL converts 8-bit RGB values to HSL with integer degrees and
// percentages, truncated.
func rgbToHSL(c RGBColor) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
