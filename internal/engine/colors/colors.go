// Package colors centralizes hex parsing, compositing and contrast math so
// every template derives its colors the same way.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned by Parse for anything that is not a
// 3-, 6- or 8-digit hex color. Callers are expected to sanitize user
// input before reaching the engine, so hitting this is a programming error.
var ErrInvalidFormat = errors.New("colors: invalid hex color format")

// Color is an sRGB color with a separate alpha coefficient.
// Alpha is kept as a 0..1 factor because it is applied per draw call,
// not stored in the raster.
type Color struct {
	R, G, B uint8
	A       float64
}

// Parse accepts 3-, 6- or 8-digit hex, with or without a leading '#'.
// The 3-digit form expands each nibble (f0a -> ff00aa); the 8-digit form
// carries alpha in the last pair.
func Parse(s string) (Color, error) {
	hexDigits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hexDigits) == 3 {
		var expanded strings.Builder
		for _, r := range hexDigits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hexDigits = expanded.String()
	}
	if len(hexDigits) != 6 && len(hexDigits) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	channels := make([]uint8, 0, 4)
	for i := 0; i < len(hexDigits); i += 2 {
		v, err := strconv.ParseUint(hexDigits[i:i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		channels = append(channels, uint8(v))
	}

	c := Color{R: channels[0], G: channels[1], B: channels[2], A: 1}
	if len(channels) == 4 {
		c.A = float64(channels[3]) / 255
	}
	return c, nil
}

// MustParse is Parse for compile-time constants; it panics on bad input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as lower-case hex. Fully opaque colors round-trip
// through the 6-digit form; anything translucent gets the 8-digit form.
func (c Color) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	a := uint8(math.Round(clamp01(c.A) * 255))
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, a)
}

// WithAlpha returns a copy with alpha replaced. Out-of-range values are
// clamped rather than rejected.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// RGBAString formats the color as a CSS-style rgba() composite string.
func (c Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		c.R, c.G, c.B, strconv.FormatFloat(clamp01(c.A), 'g', 4, 64))
}

// NRGBA converts to the stdlib non-premultiplied form used by the raster.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: c.R, G: c.G, B: c.B,
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 1}
}

// Luminance computes WCAG relative luminance: BT.709 channel weights over
// gamma-linearized sRGB.
func Luminance(c Color) float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio (L1+0.05)/(L2+0.05) with
// the brighter color on top.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

var (
	black = Color{R: 0, G: 0, B: 0, A: 1}
	white = Color{R: 255, G: 255, B: 255, A: 1}
)

// ContrastColor picks pure black or pure white, whichever reads better
// against the background. Ties resolve to white so the result is stable.
func ContrastColor(bg Color) Color {
	if ContrastRatio(white, bg) >= ContrastRatio(black, bg) {
		return white
	}
	return black
}

// Over composites fg onto an opaque bg using fg's alpha (source-over).
func Over(fg, bg Color) Color {
	a := clamp01(fg.A)
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*a + float64(b)*(1-a)))
	}
	return Color{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 1}
}

// BlendLab interpolates between two colors in Lab space. t is 0 (pure a)
// to 1 (pure b). Lab keeps gradients free of the gray dead zone RGB
// interpolation produces.
func BlendLab(a, b Color, t float64) Color {
	return fromColorful(a.colorful().BlendLab(b.colorful(), clamp01(t)))
}

// Darken blends toward black in Lab space, which keeps hue steadier than
// naive RGB scaling. t is 0 (unchanged) to 1 (black).
func Darken(c Color, t float64) Color {
	return fromColorful(c.colorful().BlendLab(colorful.Color{}, clamp01(t)))
}

// Lighten blends toward white in Lab space. t is 0 (unchanged) to 1 (white).
func Lighten(c Color, t float64) Color {
	return fromColorful(c.colorful().BlendLab(colorful.Color{R: 1, G: 1, B: 1}, clamp01(t)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
