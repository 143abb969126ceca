// Package palette derives the semantic color set every template paints with
// from a single brand color.
package palette

import (
	"github.com/pagepress/pagepress/internal/engine/colors"
)

// Palette is the full semantic color set for one brand color. It is
// regenerated whenever the brand color changes and never mutated in place.
type Palette struct {
	TextDark      colors.Color
	TextMedium    colors.Color
	TextLight     colors.Color
	TextOnPrimary colors.Color

	OffWhite   colors.Color
	LightGray  colors.Color
	MediumGray colors.Color
	BorderGray colors.Color

	PrimaryLight colors.Color
}

// Ink endpoints and the fixed neutral surfaces. The neutrals are deliberately
// not blended from the primary: saturated brand colors would turn them muddy.
var (
	inkDark  = colors.MustParse("#0f172a")
	inkLight = colors.MustParse("#f8fafc")
	paper    = colors.MustParse("#ffffff")

	offWhite   = colors.MustParse("#f8fafc")
	lightGray  = colors.MustParse("#f1f5f9")
	mediumGray = colors.MustParse("#94a3b8")
	borderGray = colors.MustParse("#e2e8f0")
)

// Opacity steps for the dark/medium/light text tones.
const (
	stepDark   = 1.00
	stepMedium = 0.70
	stepLight  = 0.45
)

// Generate derives a palette from the brand color. Light primaries get text
// tones stepped toward near-black, dark primaries toward near-white; either
// way the tones are composited over the primary so they stay legible on
// brand-colored surfaces. Pure function: identical input, identical output.
func Generate(primary colors.Color) Palette {
	ink := inkDark
	if colors.Luminance(primary) < 0.5 {
		ink = inkLight
	}

	tone := func(opacity float64) colors.Color {
		return colors.Over(ink.WithAlpha(opacity), primary)
	}

	return Palette{
		TextDark:      tone(stepDark),
		TextMedium:    tone(stepMedium),
		TextLight:     tone(stepLight),
		TextOnPrimary: colors.ContrastColor(primary),

		OffWhite:   offWhite,
		LightGray:  lightGray,
		MediumGray: mediumGray,
		BorderGray: borderGray,

		PrimaryLight: colors.Over(primary.WithAlpha(0.12), paper),
	}
}
