package render

import (
	"deepprint/internal/canvas"
	"deepprint/internal/colorutil"
	"deepprint/internal/interpolate"
	"deepprint/internal/schema"
	"deepprint/internal/utils"
)

// resolveColumnWidths implements the column-width resolution order from the
// source renderer: fixed columns are subtracted first, percentages are
// computed against what's left after fixed (not against base width), and
// auto columns split whatever remains after percentages. This ordering is
// a preserved quirk, not a bug — percentages never see the full base width
// once any fixed column is present.
func resolveColumnWidths(columns []schema.TableColumn, baseW float64) []float64 {
	widths := make([]float64, len(columns))

	var fixedUsed float64
	autoCount := 0
	for _, col := range columns {
		if col.Width.IsFixed() {
			fixedUsed += col.Width.Fixed
		} else if !col.Width.IsPercent() {
			autoCount++
		}
	}

	remaining := baseW - fixedUsed
	if remaining < 0 {
		remaining = 0
	}

	var percentUsed float64
	for i, col := range columns {
		switch {
		case col.Width.IsFixed():
			widths[i] = col.Width.Fixed
		case col.Width.IsPercent():
			w := remaining * col.Width.Percent / 100
			widths[i] = w
			percentUsed += w
		}
	}

	autoShare := 0.0
	if autoCount > 0 {
		leftover := remaining - percentUsed
		if leftover < 0 {
			leftover = 0
		}
		autoShare = leftover / float64(autoCount)
	}
	for i, col := range columns {
		if !col.Width.IsFixed() && !col.Width.IsPercent() {
			widths[i] = autoShare
		}
	}

	return widths
}

func renderTable(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	props := el.Data.(*schema.TableProps)

	rows, _ := interpolate.GetArray(props.Data, ctx.data)
	widths := resolveColumnWidths(props.Columns, el.W)
	padding := props.CellPaddingOrDefault()
	borderWidth := props.BorderWidthOrDefault()
	borderColor := colorutil.ParseColor(props.BorderColor)

	// Cell text is always drawn at a fixed 10pt, independent of any
	// element or global font-size style — unlike general text, table
	// cells don't cascade a font size.
	style := canvas.TextStyle{
		FontFamily: utils.Coalesce(ctx.styles.FontFamily, "Helvetica"),
		FontSize:   10,
		Color:      colorutil.Black,
		LineHeight: 1.2,
	}

	currentY := actualY

	if props.ShowHeadEnabled() {
		cells := make([]string, len(props.Columns))
		for i, col := range props.Columns {
			cells[i] = col.Title
		}
		currentY += drawTableRow(ctx, c, el.X, currentY, widths, cells, props.Columns, padding, borderWidth, borderColor, style)
	}

	for _, row := range rows {
		cells := make([]string, len(props.Columns))
		for i, col := range props.Columns {
			cells[i] = interpolate.GetValueFromObj(row, col.Field)
		}
		currentY += drawTableRow(ctx, c, el.X, currentY, widths, cells, props.Columns, padding, borderWidth, borderColor, style)
	}

	return currentY - actualY, nil
}

// drawTableRow draws one table row (header or data) and returns its
// height: the tallest cell's measured text height plus padding on the top
// and bottom.
func drawTableRow(ctx *context, c canvas.Canvas, x, y float64, widths []float64, cells []string, columns []schema.TableColumn, padding, borderWidth float64, borderColor colorutil.RGB, style canvas.TextStyle) float64 {
	type laidOut struct {
		para  canvas.Paragraph
		width float64
	}
	laid := make([]laidOut, len(cells))

	rowHeight := 0.0
	for i, text := range cells {
		cellStyle := style
		if i < len(columns) {
			cellStyle.Align = textAlignFrom(columns[i].TextAlign)
		}
		para := c.NewParagraph(text, cellStyle)
		innerWidth := widths[i] - 2*padding
		if innerWidth < 0 {
			innerWidth = 0
		}
		para.Layout(innerWidth)
		laid[i] = laidOut{para: para, width: widths[i]}
		if h := para.Height(); h > rowHeight {
			rowHeight = h
		}
	}

	rowHeight += 2 * padding

	cursorX := x
	for i, l := range laid {
		if borderWidth > 0 {
			c.DrawRect(canvas.Rect{X: cursorX, Y: y, W: widths[i], H: rowHeight}, canvas.Style{
				StrokeWidth: borderWidth,
				StrokeColor: borderColor,
			})
		}

		textY := y + (rowHeight-l.para.Height())/2
		l.para.Paint(c, canvas.Point{X: cursorX + padding, Y: textY})

		cursorX += widths[i]
	}

	return rowHeight
}
