// Package text implements word wrapping and styled text drawing on a canvas.
package text

import (
	"strings"

	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
)

// Align controls how the x anchor of a draw request is interpreted.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign maps a config string onto an alignment; unknown values are left.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// lineHeightRatio is the vertical increment between wrapped lines, as a
// multiple of the font size.
const lineHeightRatio = 1.35

// MeasureFunc returns the rendered width of a line in page units.
type MeasureFunc func(line string) float64

// Wrap greedily packs words into lines no wider than maxWidth. Explicit
// newlines are hard breaks; each segment wraps independently. A single word
// wider than maxWidth stays whole on its own line, overflowing rather than
// being split or truncated.
func Wrap(measure MeasureFunc, s string, maxWidth float64) []string {
	if s == "" {
		return nil
	}

	var lines []string
	for _, segment := range strings.Split(s, "\n") {
		words := strings.Fields(segment)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		if maxWidth <= 0 {
			lines = append(lines, strings.Join(words, " "))
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}

// Request describes one styled text draw. Requests are ephemeral: built,
// drawn, discarded.
type Request struct {
	Text      string
	X, Y      float64
	Size      float64
	Family    canvas.FontFamily
	Weight    canvas.FontWeight
	Color     colors.Color
	Align     Align
	MaxWidth  float64 // 0 disables wrapping
	Uppercase bool
}

// Draw paints the request onto the canvas and returns the vertical extent
// consumed, so callers can stack content below it. Empty text draws nothing
// and consumes nothing.
func Draw(c *canvas.Canvas, req Request) float64 {
	if req.Text == "" {
		return 0
	}

	s := req.Text
	if req.Uppercase {
		s = strings.ToUpper(s)
	}

	size := req.Size
	if size <= 0 {
		size = 12
	}

	measure := func(line string) float64 {
		return c.MeasureString(line, req.Family, req.Weight, size)
	}

	lines := Wrap(measure, s, req.MaxWidth)
	if len(lines) == 0 {
		return 0
	}

	lineHeight := size * lineHeightRatio
	ascent, _ := c.LineMetrics(req.Family, req.Weight, size)

	y := req.Y + ascent
	for _, line := range lines {
		x := req.X
		switch req.Align {
		case AlignCenter:
			x -= measure(line) / 2
		case AlignRight:
			x -= measure(line)
		}
		c.DrawString(line, x, y, req.Family, req.Weight, size, req.Color)
		y += lineHeight
	}

	return float64(len(lines)) * lineHeight
}
