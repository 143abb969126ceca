package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
)

// RenderFunc paints one page. (0,0) is the trim corner; pageW×pageH is the
// trim size in units. When the canvas carries a bleed margin the drawable
// area extends past the trim edge (canvas.Bounds covers it), and the routine
// is expected to paint background out to that edge.
type RenderFunc func(c *canvas.Canvas, pageW, pageH float64)

// Result is one finished export render.
type Result struct {
	Image  *image.RGBA
	Trim   image.Rectangle // trim rectangle in pixels within Image
	Preset Preset
}

// Crop mark geometry in page units: marks sit gap units outside the trim
// edge and extend cropLen further out, so they never touch live content.
// gap+len stays inside the 3 mm bleed margin (≈8.5 units).
const (
	cropGap       = 2.5
	cropLen       = 5.5
	cropThickness = 0.6
)

var (
	exportPaper = colors.MustParse("#ffffff")
	cropInk     = colors.MustParse("#1f2937")
)

// Render re-runs the page routine on a fresh surface at the preset's scale.
// This is a re-render, not a bitmap resample: text and strokes stay crisp at
// high DPI. A nil render func returns nil — the deliberate export-before-
// ready guard, not an error.
func Render(render RenderFunc, pageW, pageH float64, p Preset) *Result {
	if render == nil || pageW <= 0 || pageH <= 0 {
		return nil
	}

	bleed := p.BleedMm * unitsPerMm
	c := canvas.New(pageW+2*bleed, pageH+2*bleed, p.Scale)
	c.Fill(exportPaper)
	c.Translate(bleed, bleed)

	render(c, pageW, pageH)

	if p.CropMarks && bleed > 0 {
		drawCropMarks(c, pageW, pageH)
	}

	// The trim rectangle is sized from the page alone so its pixel
	// dimensions are exactly page × scale, independent of bleed rounding.
	px := func(v float64) int { return int(math.Round(v * p.Scale)) }
	trim := image.Rect(px(bleed), px(bleed), px(bleed)+px(pageW), px(bleed)+px(pageH))
	return &Result{Image: c.Image(), Trim: trim, Preset: p}
}

// drawCropMarks draws four L-shaped corner marks in the bleed margin.
func drawCropMarks(c *canvas.Canvas, w, h float64) {
	half := cropThickness / 2

	corner := func(x, y, dirX, dirY float64) {
		// Horizontal arm, aligned with the horizontal trim edge.
		hx := x + dirX*(cropGap+cropLen)
		if dirX > 0 {
			hx = x + dirX*cropGap
		}
		c.FillRect(hx, y-half, cropLen, cropThickness, cropInk)

		// Vertical arm, aligned with the vertical trim edge.
		vy := y + dirY*(cropGap+cropLen)
		if dirY > 0 {
			vy = y + dirY*cropGap
		}
		c.FillRect(x-half, vy, cropThickness, cropLen, cropInk)
	}

	corner(0, 0, -1, -1)
	corner(w, 0, 1, -1)
	corner(0, h, -1, 1)
	corner(w, h, 1, 1)
}

// AtPreset renders the page at the named preset and writes
// <filename>-<preset>.png into dir, returning the written path. A nil render
// func is a silent no-op; an unknown preset name is an error.
func AtPreset(render RenderFunc, pageW, pageH float64, presetName, dir, filename string) (string, error) {
	p, ok := Lookup(presetName)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, presetName)
	}

	res := Render(render, pageW, pageH, p)
	if res == nil {
		return "", nil
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", filename, p.Name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := writePNG(f, res); err != nil {
		return "", fmt.Errorf("export: encode %s: %w", path, err)
	}
	return path, nil
}

func writePNG(w io.Writer, res *Result) error {
	return png.Encode(w, res.Image)
}
