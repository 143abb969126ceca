// Package typescale derives a named set of font sizes from a page height so
// the same template copy stays proportionate from sticker to poster.
package typescale

// Scale holds the eight named sizes, in page units, strictly decreasing in
// field order. Derived per page size and cached only for the render pass.
type Scale struct {
	Display  float64
	H1       float64
	H2       float64
	H3       float64
	Body     float64
	Caption  float64
	Label    float64
	Overline float64
}

// The base unit is pageHeight/60, clamped so tiny canvases (business cards,
// stickers) and poster-sized ones both stay legible. The clamp floor is chosen
// so the smallest rung still clears minSize without flattening the ladder.
const (
	baseDivisor = 60.0
	minBase     = 12.0
	maxBase     = 34.0
	minSize     = 7.0
)

var ladder = [8]float64{2.6, 2.0, 1.5, 1.2, 1.0, 0.82, 0.72, 0.62}

// ForPageHeight computes the scale for a page height in abstract units.
func ForPageHeight(pageHeight float64) Scale {
	base := pageHeight / baseDivisor
	if base < minBase {
		base = minBase
	}
	if base > maxBase {
		base = maxBase
	}

	var sizes [8]float64
	for i, mult := range ladder {
		sizes[i] = mult * base
		if sizes[i] < minSize {
			sizes[i] = minSize
		}
	}

	return Scale{
		Display:  sizes[0],
		H1:       sizes[1],
		H2:       sizes[2],
		H3:       sizes[3],
		Body:     sizes[4],
		Caption:  sizes[5],
		Label:    sizes[6],
		Overline: sizes[7],
	}
}
