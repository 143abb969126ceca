// Package layout provides float rectangle helpers for stacking page content.
package layout

// Rect is an axis-aligned rectangle in page units.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Inset shrinks the rectangle by pad on all sides, collapsing to zero size
// rather than inverting.
func (r Rect) Inset(pad float64) Rect {
	if pad <= 0 {
		return r
	}
	out := Rect{X: r.X + pad, Y: r.Y + pad, W: r.W - 2*pad, H: r.H - 2*pad}
	if out.W < 0 {
		out.X = r.X + r.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = r.Y + r.H/2
		out.H = 0
	}
	return out
}

// SplitH splits the rectangle into top and bottom parts.
// topHeight is clamped to [0, r.H].
func (r Rect) SplitH(topHeight float64) (top Rect, bottom Rect) {
	topHeight = clamp(topHeight, 0, r.H)
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: topHeight}
	bottom = Rect{X: r.X, Y: r.Y + topHeight, W: r.W, H: r.H - topHeight}
	return top, bottom
}

// SplitV splits the rectangle into left and right parts.
// leftWidth is clamped to [0, r.W].
func (r Rect) SplitV(leftWidth float64) (left Rect, right Rect) {
	leftWidth = clamp(leftWidth, 0, r.W)
	left = Rect{X: r.X, Y: r.Y, W: leftWidth, H: r.H}
	right = Rect{X: r.X + leftWidth, Y: r.Y, W: r.W - leftWidth, H: r.H}
	return left, right
}

// AnchorBottomRight returns a w×h rectangle placed in the bottom-right
// corner, clamped to fit.
func (r Rect) AnchorBottomRight(w, h float64) Rect {
	w = clamp(w, 0, r.W)
	h = clamp(h, 0, r.H)
	return Rect{X: r.Right() - w, Y: r.Bottom() - h, W: w, H: h}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
