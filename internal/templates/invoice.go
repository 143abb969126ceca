package templates

import (
	"github.com/pagepress/pagepress/internal/config"
	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/export"
	"github.com/pagepress/pagepress/internal/engine/layout"
	"github.com/pagepress/pagepress/internal/engine/palette"
	"github.com/pagepress/pagepress/internal/engine/shape"
	"github.com/pagepress/pagepress/internal/engine/text"
	"github.com/pagepress/pagepress/internal/engine/typescale"
)

// Invoice renders an A4-style sheet: gradient header band, overline and
// title, body copy, a zebra-striped line-item table and a footer rule.
func Invoice(doc config.Document) export.RenderFunc {
	return func(c *canvas.Canvas, pageW, pageH float64) {
		primary := brandColor(doc)
		pal := palette.Generate(primary)
		inkDark, inkMedium, inkLight := paperInks(pal)
		scale := typescale.ForPageHeight(pageH)
		family := canvas.ParseFamily(doc.FontStyle)

		bounds := c.Bounds()
		c.FillRect(bounds.X, bounds.Y, bounds.W, bounds.H, colors.MustParse("#ffffff"))

		bandH := pageH * 0.12
		shape.HeaderBand(c, bounds.X, bounds.Y, bounds.W, bandH-bounds.Y, primary, shape.BandGradient)

		margin := pageW * 0.08
		page := layout.Rect{X: margin, Y: bandH + pageH*0.04, W: pageW - 2*margin, H: pageH}

		// Band text sits inside the band itself.
		text.Draw(c, text.Request{
			Text:      doc.Overline,
			X:         margin,
			Y:         bandH * 0.2,
			Size:      scale.Overline,
			Family:    family,
			Color:     pal.TextOnPrimary,
			Uppercase: true,
		})
		text.Draw(c, text.Request{
			Text:   doc.Title,
			X:      margin,
			Y:      bandH*0.2 + scale.Overline*1.6,
			Size:   scale.H1,
			Family: family,
			Weight: canvas.WeightBold,
			Color:  pal.TextOnPrimary,
		})

		y := page.Y
		y += text.Draw(c, text.Request{
			Text:     doc.Subtitle,
			X:        page.X,
			Y:        y,
			Size:     scale.H3,
			Family:   family,
			Color:    inkMedium,
			MaxWidth: page.W,
		})
		y += scale.Body * 0.8

		for _, para := range doc.Body {
			y += text.Draw(c, text.Request{
				Text:     para,
				X:        page.X,
				Y:        y,
				Size:     scale.Body,
				Family:   family,
				Color:    inkDark,
				MaxWidth: page.W,
			})
			y += scale.Body * 0.5
		}

		if doc.Table != nil && len(doc.Table.Rows) > 0 {
			y += scale.Body
			cols := make([]shape.Column, len(doc.Table.Columns))
			for i, tc := range doc.Table.Columns {
				cols[i] = shape.Column{
					Label:         tc.Label,
					Width:         tc.Width,
					WidthFraction: tc.Fraction,
					Align:         text.ParseAlign(tc.Align),
				}
			}
			y += shape.Table(c, page.X, y, page.W, cols, doc.Table.Rows, shape.TableOptions{
				RowHeight:   scale.Body * 1.9,
				FontSize:    scale.Caption,
				Family:      family,
				ZebraStripe: true,
				HeaderColor: inkDark,
				TextColor:   inkMedium,
				RuleColor:   pal.BorderGray,
				StripeColor: pal.LightGray,
			})
		}

		// Footer pinned to the bottom margin.
		footerY := pageH - pageH*0.06
		shape.Divider(c, page.X, footerY-scale.Caption, page.W, primary, shape.DividerOrnate, 1)
		text.Draw(c, text.Request{
			Text:   doc.Footer,
			X:      page.X + page.W/2,
			Y:      footerY,
			Size:   scale.Caption,
			Family: family,
			Color:  inkLight,
			Align:  text.AlignCenter,
		})
	}
}
