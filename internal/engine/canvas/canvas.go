// Package canvas is the raster drawing surface the engine paints onto.
//
// A canvas binds a logical page size in units to a pixel scale factor, so the
// same drawing routine renders a 1x editor preview or a 600 DPI print export
// without changing a single coordinate.
package canvas

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/layout"
)

// Canvas is an offscreen RGBA raster with a unit-to-pixel transform.
// Each render pass owns its own canvas; nothing here is shared.
type Canvas struct {
	img    *image.RGBA
	scale  float64
	w, h   float64
	dx, dy float64
	faces  map[faceKey]font.Face
}

// New allocates a canvas of w×h units rasterized at scale pixels per unit.
func New(w, h, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Round(w * scale))
	ph := int(math.Round(h * scale))
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, pw, ph)),
		scale: scale,
		w:     w,
		h:     h,
		faces: make(map[faceKey]font.Face),
	}
}

// Image exposes the backing raster for encoding or blitting.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Scale returns the pixel-per-unit factor.
func (c *Canvas) Scale() float64 { return c.scale }

// Size returns the logical canvas size in units.
func (c *Canvas) Size() (w, h float64) { return c.w, c.h }

// Translate shifts the unit-space origin. The export pipeline uses this to
// put (0,0) at the trim corner while keeping the bleed margin drawable at
// negative coordinates.
func (c *Canvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

// Bounds returns the full drawable area in current unit coordinates,
// including any bleed margin in front of the origin.
func (c *Canvas) Bounds() layout.Rect {
	return layout.Rect{X: -c.dx, Y: -c.dy, W: c.w, H: c.h}
}

func (c *Canvas) xpx(x float64) int { return int(math.Round((x + c.dx) * c.scale)) }
func (c *Canvas) ypx(y float64) int { return int(math.Round((y + c.dy) * c.scale)) }

// rectPx converts a unit rect to pixels, keeping sub-pixel strokes at least
// one pixel wide so thin rules survive small preview scales.
func (c *Canvas) rectPx(x, y, w, h float64) image.Rectangle {
	x0, y0 := c.xpx(x), c.ypx(y)
	x1, y1 := c.xpx(x+w), c.ypx(y+h)
	if w > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if h > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}

// Fill paints the entire surface, ignoring the translation.
func (c *Canvas) Fill(col colors.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// FillRect paints a rectangle, blending through the color's alpha.
// Degenerate sizes are a no-op.
func (c *Canvas) FillRect(x, y, w, h float64, col colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := c.rectPx(x, y, w, h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{}, draw.Over)
}

// FadeRectH fills a rectangle with the color's alpha ramping from zero at
// both ends to full strength in the middle.
func (c *Canvas) FadeRectH(x, y, w, h float64, col colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := c.rectPx(x, y, w, h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	startX := (x + c.dx) * c.scale
	widthPx := w * c.scale
	for px := r.Min.X; px < r.Max.X; px++ {
		t := (float64(px) + 0.5 - startX) / widthPx
		ramp := 1 - math.Abs(2*t-1)
		if ramp < 0 {
			ramp = 0
		}
		column := image.Rect(px, r.Min.Y, px+1, r.Max.Y)
		draw.Draw(c.img, column, image.NewUniform(col.WithAlpha(col.A*ramp).NRGBA()), image.Point{}, draw.Over)
	}
}

// GradientRectV fills a rectangle blending top to bottom in Lab space.
func (c *Canvas) GradientRectV(x, y, w, h float64, top, bottom colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := c.rectPx(x, y, w, h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	startY := (y + c.dy) * c.scale
	heightPx := h * c.scale
	for py := r.Min.Y; py < r.Max.Y; py++ {
		t := (float64(py) + 0.5 - startY) / heightPx
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		row := image.Rect(r.Min.X, py, r.Max.X, py+1)
		draw.Draw(c.img, row, image.NewUniform(colors.BlendLab(top, bottom, t).NRGBA()), image.Point{}, draw.Over)
	}
}

// FillWave fills a band whose bottom edge oscillates sinusoidally around
// y+baseH with the given amplitude, completing cycles full periods across
// the width.
func (c *Canvas) FillWave(x, y, w, baseH, amp, cycles float64, col colors.Color) {
	if w <= 0 || baseH+amp <= 0 {
		return
	}
	r := c.rectPx(x, y, w, baseH+amp).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	startX := (x + c.dx) * c.scale
	widthPx := w * c.scale
	topPx := c.ypx(y)
	uniform := image.NewUniform(col.NRGBA())
	for px := r.Min.X; px < r.Max.X; px++ {
		t := (float64(px) + 0.5 - startX) / widthPx
		edge := y + baseH + amp*math.Sin(2*math.Pi*cycles*t)
		edgePx := c.ypx(edge)
		if edgePx <= topPx {
			continue
		}
		column := image.Rect(px, topPx, px+1, edgePx).Intersect(c.img.Bounds())
		if !column.Empty() {
			draw.Draw(c.img, column, uniform, image.Point{}, draw.Over)
		}
	}
}

// MeasureString returns the advance width of s in units.
func (c *Canvas) MeasureString(s string, fam FontFamily, weight FontWeight, size float64) float64 {
	if s == "" {
		return 0
	}
	adv := font.MeasureString(c.face(fam, weight, size), s)
	return float64(adv) / 64 / c.scale
}

// LineMetrics returns the face ascent and natural line height in units.
func (c *Canvas) LineMetrics(fam FontFamily, weight FontWeight, size float64) (ascent, height float64) {
	m := c.face(fam, weight, size).Metrics()
	return float64(m.Ascent) / 64 / c.scale, float64(m.Height) / 64 / c.scale
}

// DrawString draws a single line with its baseline at y.
func (c *Canvas) DrawString(s string, x, y float64, fam FontFamily, weight FontWeight, size float64, col colors.Color) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: c.face(fam, weight, size),
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round((x + c.dx) * c.scale * 64)),
			Y: fixed.Int26_6(math.Round((y + c.dy) * c.scale * 64)),
		},
	}
	d.DrawString(s)
}

// ScaleMode selects how a source image maps into a destination rect.
type ScaleMode int

const (
	// ScaleFit letterboxes the image inside the rect, preserving aspect.
	ScaleFit ScaleMode = iota
	// ScaleFill covers the rect, cropping the source centrally.
	ScaleFill
	// ScaleStretch fills the rect exactly, distorting if needed.
	ScaleStretch
)

// DrawImageInRect scales a decoded image into the unit rect. A nil image or
// degenerate rect is a no-op; templates start without cover imagery.
func (c *Canvas) DrawImageInRect(src image.Image, x, y, w, h float64, mode ScaleMode) {
	if src == nil || w <= 0 || h <= 0 {
		return
	}
	sb := src.Bounds()
	if sb.Empty() {
		return
	}
	dst := c.rectPx(x, y, w, h)

	switch mode {
	case ScaleStretch:
		// Use dst as is.
	case ScaleFill:
		// Crop the source centrally to the destination aspect ratio.
		dstAspect := float64(dst.Dx()) / float64(dst.Dy())
		srcAspect := float64(sb.Dx()) / float64(sb.Dy())
		if srcAspect > dstAspect {
			cropW := int(float64(sb.Dy()) * dstAspect)
			off := (sb.Dx() - cropW) / 2
			sb = image.Rect(sb.Min.X+off, sb.Min.Y, sb.Min.X+off+cropW, sb.Max.Y)
		} else if srcAspect < dstAspect {
			cropH := int(float64(sb.Dx()) / dstAspect)
			off := (sb.Dy() - cropH) / 2
			sb = image.Rect(sb.Min.X, sb.Min.Y+off, sb.Max.X, sb.Min.Y+off+cropH)
		}
	default: // ScaleFit
		scale := math.Min(float64(dst.Dx())/float64(sb.Dx()), float64(dst.Dy())/float64(sb.Dy()))
		tw := int(math.Round(float64(sb.Dx()) * scale))
		th := int(math.Round(float64(sb.Dy()) * scale))
		ox := dst.Min.X + (dst.Dx()-tw)/2
		oy := dst.Min.Y + (dst.Dy()-th)/2
		dst = image.Rect(ox, oy, ox+tw, oy+th)
	}

	xdraw.ApproxBiLinear.Scale(c.img, dst, src, sb, xdraw.Over, nil)
}

// EncodePNG writes the raster as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
