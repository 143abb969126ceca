package templates

import (
	"github.com/pagepress/pagepress/internal/config"
	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/export"
	"github.com/pagepress/pagepress/internal/engine/layout"
	"github.com/pagepress/pagepress/internal/engine/palette"
	"github.com/pagepress/pagepress/internal/engine/shape"
	"github.com/pagepress/pagepress/internal/engine/text"
	"github.com/pagepress/pagepress/internal/engine/typescale"
)

// BusinessCard renders a single-sided card: wave header band with the
// company name, contact block on the left, QR badge bottom-right.
func BusinessCard(doc config.Document) export.RenderFunc {
	return func(c *canvas.Canvas, pageW, pageH float64) {
		primary := brandColor(doc)
		pal := palette.Generate(primary)
		inkDark, inkMedium, inkLight := paperInks(pal)
		scale := typescale.ForPageHeight(pageH)
		family := canvas.ParseFamily(doc.FontStyle)

		// Background out to the bleed edge.
		bounds := c.Bounds()
		c.FillRect(bounds.X, bounds.Y, bounds.W, bounds.H, pal.OffWhite)

		bandH := pageH * 0.34
		shape.HeaderBand(c, bounds.X, bounds.Y, bounds.W, bandH-bounds.Y, primary, shape.BandWave)

		page := layout.Rect{X: 0, Y: 0, W: pageW, H: pageH}.Inset(pageH * 0.08)

		y := page.Y
		y += text.Draw(c, text.Request{
			Text:      doc.Title,
			X:         page.X,
			Y:         y,
			Size:      scale.H2,
			Family:    family,
			Weight:    canvas.WeightBold,
			Color:     pal.TextOnPrimary,
			MaxWidth:  page.W,
			Uppercase: true,
		})
		text.Draw(c, text.Request{
			Text:     doc.Subtitle,
			X:        page.X,
			Y:        y,
			Size:     scale.Overline,
			Family:   family,
			Color:    pal.TextOnPrimary,
			MaxWidth: page.W,
		})

		// Contact block below the band.
		y = bandH + pageH*0.08
		y += text.Draw(c, text.Request{
			Text:   doc.Contact.Name,
			X:      page.X,
			Y:      y,
			Size:   scale.H3,
			Family: family,
			Weight: canvas.WeightBold,
			Color:  inkDark,
		})
		y += text.Draw(c, text.Request{
			Text:      doc.Contact.Role,
			X:         page.X,
			Y:         y,
			Size:      scale.Label,
			Family:    family,
			Color:     inkMedium,
			Uppercase: true,
		})

		y += scale.Label * 0.6
		shape.Divider(c, page.X, y, page.W*0.4, primary, shape.DividerGradient, 1.2)
		y += scale.Label * 0.9

		for _, line := range []string{doc.Contact.Email, doc.Contact.Phone, doc.Contact.Website} {
			y += text.Draw(c, text.Request{
				Text:   line,
				X:      page.X,
				Y:      y,
				Size:   scale.Caption,
				Family: family,
				Color:  inkLight,
			})
		}

		// QR badge in the bottom-right corner, sized to the free column.
		qrSize := pageH * 0.28
		qrRect := page.AnchorBottomRight(qrSize, qrSize)
		_ = shape.QRBadge(c, qrRect.X, qrRect.Y, qrRect.W, doc.QR, inkDark)
	}
}
