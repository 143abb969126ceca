package templates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagepress/pagepress/internal/config"
	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/export"
	"github.com/pagepress/pagepress/internal/engine/palette"
)

func sampleCard() config.Document {
	doc := config.Document{
		Template:   "business-card",
		BrandColor: "#1e40af",
		Title:      "Acme Corp",
		Subtitle:   "Industrial design studio",
		Contact: config.Contact{
			Name:    "Jo Smith",
			Role:    "Creative Director",
			Email:   "jo@acme.example",
			Phone:   "+1 555 0100",
			Website: "acme.example",
		},
		QR: "https://acme.example",
	}
	doc.ApplyDefaults()
	return doc
}

func sampleInvoice() config.Document {
	doc := config.Document{
		Template:   "invoice",
		BrandColor: "#9000ff",
		Overline:   "Invoice",
		Title:      "INV-2041",
		Subtitle:   "Acme Corp — August",
		Body:       []string{"Payment due within 30 days of the invoice date."},
		Footer:     "Acme Corp · 1 Factory Lane",
		Table: &config.TableSpec{
			Columns: []config.TableColumn{
				{Label: "Item", Fraction: 3},
				{Label: "Qty", Width: 50, Align: "right"},
				{Label: "Amount", Fraction: 1, Align: "right"},
			},
			Rows: [][]string{
				{"Brand refresh", "1", "4200.00"},
				{"Stationery print run", "500", "860.00"},
				{"Signage", "2", "1300.00"},
			},
		},
	}
	doc.ApplyDefaults()
	return doc
}

func inkCount(c *canvas.Canvas) int {
	img := c.Image()
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.R != 255 || px.G != 255 || px.B != 255 {
				n++
			}
		}
	}
	return n
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		b, ok := Lookup(name)
		require.True(t, ok, name)
		require.NotNil(t, b)
	}
	_, ok := Lookup("brochure")
	require.False(t, ok)
}

func TestBusinessCardPaints(t *testing.T) {
	t.Parallel()

	doc := sampleCard()
	c := canvas.New(doc.Page.Width, doc.Page.Height, 1)
	BusinessCard(doc)(c, doc.Page.Width, doc.Page.Height)
	require.Greater(t, inkCount(c), 1000)
}

func TestInvoicePaints(t *testing.T) {
	t.Parallel()

	doc := sampleInvoice()
	c := canvas.New(doc.Page.Width, doc.Page.Height, 1)
	Invoice(doc)(c, doc.Page.Width, doc.Page.Height)
	require.Greater(t, inkCount(c), 5000)
}

func TestEmptyDocumentStillRenders(t *testing.T) {
	t.Parallel()

	// Editor state starts mostly empty; the renderer must not panic and the
	// band still paints.
	doc := config.Document{Template: "business-card", BrandColor: "#1e40af"}
	doc.ApplyDefaults()
	c := canvas.New(doc.Page.Width, doc.Page.Height, 1)
	BusinessCard(doc)(c, doc.Page.Width, doc.Page.Height)
	require.Greater(t, inkCount(c), 100)
}

func TestBadBrandColorFallsBack(t *testing.T) {
	t.Parallel()

	doc := sampleCard()
	doc.BrandColor = "not-a-color"
	c := canvas.New(doc.Page.Width, doc.Page.Height, 1)
	require.NotPanics(t, func() {
		BusinessCard(doc)(c, doc.Page.Width, doc.Page.Height)
	})
}

func TestPaperInksStayDarkOnLightSurfaces(t *testing.T) {
	t.Parallel()

	// A dark primary derives light text tones for brand surfaces; body copy
	// on paper must still come out dark.
	pal := palette.Generate(colors.MustParse("#111827"))
	dark, medium, light := paperInks(pal)
	for _, ink := range []colors.Color{dark, medium, light} {
		require.Less(t, colors.Luminance(ink), 0.5, ink.Hex())
	}

	// A light primary's own tones are already dark and pass through.
	pal = palette.Generate(colors.MustParse("#f8fafc"))
	dark, _, _ = paperInks(pal)
	require.Equal(t, pal.TextDark, dark)
}

func TestTemplatesExportThroughPresets(t *testing.T) {
	t.Parallel()

	doc := sampleInvoice()
	p, _ := export.Lookup("print-standard")
	res := export.Render(Invoice(doc), doc.Page.Width, doc.Page.Height, p)
	require.NotNil(t, res)
	require.Equal(t, int(595*p.Scale), res.Trim.Dx())
}
