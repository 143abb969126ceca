package shape

import (
	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/text"
)

// Column describes one table column. Width reserves a fixed unit width;
// columns without one share the leftover space by WidthFraction (a column
// with neither counts as fraction 1).
type Column struct {
	Label         string
	Width         float64
	WidthFraction float64
	Align         text.Align
}

// TableOptions carries the per-table styling. Colors come from the caller's
// palette; the engine holds no theme state of its own.
type TableOptions struct {
	RowHeight   float64
	FontSize    float64
	Family      canvas.FontFamily
	ZebraStripe bool

	HeaderColor colors.Color // header label ink
	TextColor   colors.Color // cell ink
	RuleColor   colors.Color // header underline
	StripeColor colors.Color // zebra fill, usually a faint gray
	CellPadding float64
}

// Table draws a header row plus the data rows and returns the total height
// consumed so the caller can continue stacking below it. Zero rows draw
// nothing and consume nothing: table configs start empty in the editor.
// A table wider than its container still renders, clipped by the surface.
func Table(c *canvas.Canvas, x, y, width float64, cols []Column, rows [][]string, opts TableOptions) float64 {
	if len(cols) == 0 || len(rows) == 0 {
		return 0
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = 18
	}
	if opts.FontSize <= 0 {
		opts.FontSize = opts.RowHeight * 0.5
	}
	if opts.CellPadding <= 0 {
		opts.CellPadding = opts.FontSize * 0.5
	}

	widths := resolveWidths(cols, width)
	rowH := opts.RowHeight

	// Header: bold labels over a rule.
	drawRow := func(cells []string, top float64, weight canvas.FontWeight, ink colors.Color) {
		cellX := x
		for i, colWidth := range widths {
			if i >= len(cells) {
				break
			}
			anchor := cellX + opts.CellPadding
			switch cols[i].Align {
			case text.AlignCenter:
				anchor = cellX + colWidth/2
			case text.AlignRight:
				anchor = cellX + colWidth - opts.CellPadding
			}
			text.Draw(c, text.Request{
				Text:   cells[i],
				X:      anchor,
				Y:      top + (rowH-opts.FontSize*1.35)/2,
				Size:   opts.FontSize,
				Family: opts.Family,
				Weight: weight,
				Color:  ink,
				Align:  cols[i].Align,
			})
			cellX += colWidth
		}
	}

	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = col.Label
	}
	drawRow(labels, y, canvas.WeightBold, opts.HeaderColor)
	c.FillRect(x, y+rowH-1, width, 1, opts.RuleColor)

	top := y + rowH
	for i, row := range rows {
		if opts.ZebraStripe && i%2 == 1 {
			c.FillRect(x, top, width, rowH, opts.StripeColor)
		}
		drawRow(row, top, canvas.WeightRegular, opts.TextColor)
		top += rowH
	}

	return rowH * float64(len(rows)+1)
}

// resolveWidths reserves fixed widths first, then splits the remainder among
// fractional columns.
func resolveWidths(cols []Column, total float64) []float64 {
	widths := make([]float64, len(cols))

	fixed := 0.0
	fracSum := 0.0
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
			continue
		}
		frac := col.WidthFraction
		if frac <= 0 {
			frac = 1
		}
		fracSum += frac
	}

	remaining := total - fixed
	if remaining < 0 {
		remaining = 0
	}
	for i, col := range cols {
		if col.Width > 0 {
			continue
		}
		frac := col.WidthFraction
		if frac <= 0 {
			frac = 1
		}
		widths[i] = remaining * frac / fracSum
	}
	return widths
}
