// Package templates holds the reference template renderers shipped with the
// engine. Each renderer is a pure function of its document descriptor: it
// derives a palette and a typographic scale per pass and paints through the
// engine's primitives, so side-by-side previews never share state.
package templates

import (
	"github.com/pagepress/pagepress/internal/config"
	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/export"
	"github.com/pagepress/pagepress/internal/engine/palette"
)

// Builder turns a document descriptor into a page-drawing routine.
type Builder func(doc config.Document) export.RenderFunc

var registry = map[string]Builder{
	"business-card": BusinessCard,
	"invoice":       Invoice,
}

// Lookup finds a template builder by name.
func Lookup(name string) (Builder, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names lists the registered template names.
func Names() []string {
	return []string{"business-card", "invoice"}
}

// brandColor parses the descriptor's brand color, falling back to a default
// navy when the editor state is empty or half-typed.
func brandColor(doc config.Document) colors.Color {
	c, err := colors.Parse(doc.BrandColor)
	if err != nil {
		return colors.MustParse("#1e40af")
	}
	return c
}

var (
	paperInk   = colors.MustParse("#0f172a")
	paperWhite = colors.MustParse("#ffffff")
)

// paperInks returns the dark/medium/light text hierarchy for copy sitting on
// light neutral surfaces. A dark primary derives a light-on-brand hierarchy
// that would vanish on paper, so the fixed slate ramp takes over there.
func paperInks(pal palette.Palette) (dark, medium, light colors.Color) {
	if colors.Luminance(pal.TextDark) < 0.5 {
		return pal.TextDark, pal.TextMedium, pal.TextLight
	}
	return paperInk,
		colors.Over(paperInk.WithAlpha(0.70), paperWhite),
		colors.Over(paperInk.WithAlpha(0.45), paperWhite)
}
