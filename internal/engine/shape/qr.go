package shape

import (
	"image/color"
	"math"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
)

// QRBadge draws a QR code of the given payload into a size×size unit square.
// An empty payload or degenerate size is a no-op; contact blocks start empty
// in the editor. The code is generated at the canvas's native pixel density
// so print exports stay sharp.
func QRBadge(c *canvas.Canvas, x, y, size float64, payload string, col colors.Color) error {
	if payload == "" || size <= 0 {
		return nil
	}

	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return err
	}
	code.ForegroundColor = col.NRGBA()
	code.BackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

	sizePx := int(math.Round(size * c.Scale()))
	if sizePx < 21 {
		sizePx = 21
	}
	c.DrawImageInRect(code.Image(sizePx), x, y, size, size, canvas.ScaleStretch)
	return nil
}
