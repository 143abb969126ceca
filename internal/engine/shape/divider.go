// Package shape draws the decorative primitives shared by every template:
// dividers, header bands, data tables and QR badges.
package shape

import (
	"strings"

	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
)

// DividerStyle selects how a horizontal rule is drawn.
type DividerStyle int

const (
	DividerSolid DividerStyle = iota
	DividerGradient
	DividerOrnate
)

// ParseDividerStyle maps a config string onto a style; unknown values are solid.
func ParseDividerStyle(s string) DividerStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient":
		return DividerGradient
	case "ornate":
		return DividerOrnate
	default:
		return DividerSolid
	}
}

// Divider draws a horizontal rule of the given style and thickness.
// Degenerate widths or thicknesses are a no-op.
func Divider(c *canvas.Canvas, x, y, width float64, col colors.Color, style DividerStyle, thickness float64) {
	if width <= 0 || thickness <= 0 {
		return
	}

	switch style {
	case DividerGradient:
		c.FadeRectH(x, y, width, thickness, col)

	case DividerOrnate:
		// Solid core line flanked by two square end caps.
		capSize := thickness * 3
		if capSize*2 >= width {
			c.FillRect(x, y, width, thickness, col)
			return
		}
		capOffset := (capSize - thickness) / 2
		c.FillRect(x, y-capOffset, capSize, capSize, col)
		c.FillRect(x+width-capSize, y-capOffset, capSize, capSize, col)
		c.FillRect(x+capSize*1.5, y, width-capSize*3, thickness, col)

	default:
		c.FillRect(x, y, width, thickness, col)
	}
}
