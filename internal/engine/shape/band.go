package shape

import (
	"strings"

	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
)

// BandStyle selects how a header band is filled.
type BandStyle int

const (
	BandFlat BandStyle = iota
	BandGradient
	BandWave
	BandMinimal
)

// ParseBandStyle maps a config string onto a style; unknown values are flat.
func ParseBandStyle(s string) BandStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient":
		return BandGradient
	case "wave":
		return BandWave
	case "minimal":
		return BandMinimal
	default:
		return BandFlat
	}
}

// waveCycles is how many sine periods the wave edge completes across the band.
const waveCycles = 1.5

// HeaderBand fills a page-top band. Purely a paint side effect; callers
// position their own text inside it.
func HeaderBand(c *canvas.Canvas, x, y, w, h float64, col colors.Color, style BandStyle) {
	if w <= 0 || h <= 0 {
		return
	}

	switch style {
	case BandGradient:
		c.GradientRectV(x, y, w, h, col, colors.Darken(col, 0.35))

	case BandWave:
		amp := h * 0.12
		c.FillWave(x, y, w, h-amp, amp, waveCycles, col)

	case BandMinimal:
		rule := h * 0.04
		if rule < 0.8 {
			rule = 0.8
		}
		c.FillRect(x, y, w, rule, col)
		c.FillRect(x, y+h-rule, w, rule, col)

	default:
		c.FillRect(x, y, w, h, col)
	}
}
