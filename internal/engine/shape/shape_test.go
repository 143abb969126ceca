package shape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/text"
)

var (
	ink   = colors.MustParse("#1e40af")
	paper = colors.MustParse("#ffffff")
	gray  = colors.MustParse("#e2e8f0")
)

func freshCanvas(w, h float64) *canvas.Canvas {
	c := canvas.New(w, h, 1)
	c.Fill(paper)
	return c
}

// inkInRow counts non-paper pixels in the given pixel row.
func inkInRow(c *canvas.Canvas, y int) int {
	img := c.Image()
	n := 0
	for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
		px := img.RGBAAt(x, y)
		if px.R != 255 || px.G != 255 || px.B != 255 {
			n++
		}
	}
	return n
}

func totalInk(c *canvas.Canvas) int {
	n := 0
	for y := c.Image().Bounds().Min.Y; y < c.Image().Bounds().Max.Y; y++ {
		n += inkInRow(c, y)
	}
	return n
}

func TestDividerSolidSpansWidth(t *testing.T) {
	t.Parallel()

	c := freshCanvas(200, 20)
	Divider(c, 20, 10, 160, ink, DividerSolid, 2)
	require.GreaterOrEqual(t, inkInRow(c, 11), 160)
	require.Zero(t, inkInRow(c, 2))
}

func TestDividerGradientFadesAtEnds(t *testing.T) {
	t.Parallel()

	c := freshCanvas(200, 20)
	Divider(c, 0, 10, 200, colors.MustParse("#000000"), DividerGradient, 4)

	img := c.Image()
	center := img.RGBAAt(100, 11)
	edge := img.RGBAAt(2, 11)
	require.Less(t, center.R, uint8(64), "center is near full ink")
	require.Greater(t, edge.R, uint8(192), "ends fade out")
}

func TestDividerOrnateHasEndCaps(t *testing.T) {
	t.Parallel()

	c := freshCanvas(200, 20)
	Divider(c, 20, 10, 160, ink, DividerOrnate, 2)

	// The caps are taller than the core line, so rows just above the line
	// carry ink only near the ends.
	require.Greater(t, inkInRow(c, 8), 0)
	require.Greater(t, inkInRow(c, 11), 100)
}

func TestDividerDegenerateIsNoop(t *testing.T) {
	t.Parallel()

	c := freshCanvas(100, 20)
	Divider(c, 0, 10, 0, ink, DividerSolid, 2)
	Divider(c, 0, 10, 50, ink, DividerSolid, 0)
	require.Zero(t, totalInk(c))
}

func TestHeaderBandStylesPaint(t *testing.T) {
	t.Parallel()

	for _, style := range []BandStyle{BandFlat, BandGradient, BandWave, BandMinimal} {
		c := freshCanvas(200, 100)
		HeaderBand(c, 0, 0, 200, 50, ink, style)
		require.Greater(t, totalInk(c), 100, "style %d", style)
	}
}

func TestHeaderBandMinimalLeavesInteriorOpen(t *testing.T) {
	t.Parallel()

	c := freshCanvas(200, 100)
	HeaderBand(c, 0, 0, 200, 50, ink, BandMinimal)
	require.Greater(t, inkInRow(c, 0), 100, "top rule")
	require.Greater(t, inkInRow(c, 49), 100, "bottom rule")
	require.Zero(t, inkInRow(c, 25), "interior stays clear")
}

func TestHeaderBandWaveEdgeOscillates(t *testing.T) {
	t.Parallel()

	c := freshCanvas(300, 120)
	HeaderBand(c, 0, 0, 300, 100, ink, BandWave)

	// At the wave trough row, some columns are filled and some are not.
	trough := 90
	filled := inkInRow(c, trough)
	require.Greater(t, filled, 0)
	require.Less(t, filled, 300)
}

func TestTableHeightAccounting(t *testing.T) {
	t.Parallel()

	cols := []Column{
		{Label: "Item", WidthFraction: 2},
		{Label: "Qty", Width: 40, Align: text.AlignRight},
		{Label: "Price", WidthFraction: 1, Align: text.AlignRight},
	}
	opts := TableOptions{
		RowHeight:   20,
		HeaderColor: ink,
		TextColor:   ink,
		RuleColor:   gray,
		StripeColor: gray,
		ZebraStripe: true,
	}

	for _, n := range []int{1, 3, 7} {
		rows := make([][]string, n)
		for i := range rows {
			rows[i] = []string{"Widget", "2", "19.00"}
		}
		c := freshCanvas(400, 400)
		h := Table(c, 20, 20, 360, cols, rows, opts)
		require.InDelta(t, float64(n+1)*20, h, 0.001, "rows=%d", n)
		require.Greater(t, totalInk(c), 0)
	}
}

func TestTableZeroRowsConsumesNothing(t *testing.T) {
	t.Parallel()

	c := freshCanvas(200, 200)
	h := Table(c, 0, 0, 200, []Column{{Label: "A"}}, nil, TableOptions{RowHeight: 20, HeaderColor: ink, TextColor: ink})
	require.Zero(t, h)
	require.Zero(t, totalInk(c))

	h = Table(c, 0, 0, 200, nil, [][]string{{"x"}}, TableOptions{RowHeight: 20})
	require.Zero(t, h)
}

func TestTableZebraStripes(t *testing.T) {
	t.Parallel()

	cols := []Column{{Label: "A"}}
	rows := [][]string{{""}, {""}, {""}, {""}}
	opts := TableOptions{
		RowHeight:   20,
		HeaderColor: ink,
		TextColor:   ink,
		RuleColor:   gray,
		StripeColor: colors.MustParse("#dddddd"),
		ZebraStripe: true,
	}
	c := freshCanvas(200, 200)
	Table(c, 0, 0, 200, cols, rows, opts)

	// Rows are drawn from y=20; row index 1 (second data row) is striped.
	require.Greater(t, inkInRow(c, 50), 100, "odd row striped")
	require.Zero(t, inkInRow(c, 30), "even row clear")
}

func TestResolveWidthsFixedFirst(t *testing.T) {
	t.Parallel()

	widths := resolveWidths([]Column{
		{Width: 50},
		{WidthFraction: 1},
		{WidthFraction: 3},
	}, 250)
	require.Equal(t, []float64{50, 50, 150}, widths)

	// Columns with neither width nor fraction share evenly.
	widths = resolveWidths([]Column{{}, {}}, 100)
	require.Equal(t, []float64{50, 50}, widths)

	// Fixed widths beyond the container leave nothing to distribute but
	// never go negative.
	widths = resolveWidths([]Column{{Width: 300}, {}}, 100)
	require.Equal(t, []float64{300, 0}, widths)
}

func TestQRBadge(t *testing.T) {
	t.Parallel()

	c := freshCanvas(100, 100)
	require.NoError(t, QRBadge(c, 10, 10, 60, "https://example.com/card", ink))
	require.Greater(t, totalInk(c), 200)

	// Empty payload is the editor's initial state: silently nothing.
	clean := freshCanvas(50, 50)
	require.NoError(t, QRBadge(clean, 0, 0, 40, "", ink))
	require.Zero(t, totalInk(clean))
}

func TestStyleParsers(t *testing.T) {
	t.Parallel()

	require.Equal(t, DividerGradient, ParseDividerStyle("gradient"))
	require.Equal(t, DividerOrnate, ParseDividerStyle("ORNATE"))
	require.Equal(t, DividerSolid, ParseDividerStyle("fancy"))

	require.Equal(t, BandWave, ParseBandStyle("wave"))
	require.Equal(t, BandMinimal, ParseBandStyle("minimal"))
	require.Equal(t, BandGradient, ParseBandStyle("gradient"))
	require.Equal(t, BandFlat, ParseBandStyle(""))
}
