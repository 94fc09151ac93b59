package render

import (
	"fmt"

	"deepprint/internal/canvas"
	"deepprint/internal/colorutil"
	"deepprint/internal/interpolate"
	"deepprint/internal/schema"
	"deepprint/internal/utils"
)

// renderBarcode draws a bordered placeholder box with a caption instead of
// a real barcode symbology. Rasterising an actual barcode is out of scope
// here; see schema.BarcodeProps.
func renderBarcode(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	props := el.Data.(*schema.BarcodeProps)
	value := interpolate.Render(props.Value, ctx.data)

	c.DrawRect(canvas.Rect{X: el.X, Y: actualY, W: el.W, H: el.H}, canvas.Style{
		StrokeWidth: defaultStrokeWidth,
		StrokeColor: colorutil.Black,
	})

	caption := fmt.Sprintf("[Barcode: %s]", value)
	para := c.NewParagraph(caption, canvas.TextStyle{
		FontFamily: utils.Coalesce(ctx.styles.FontFamily, "Helvetica"),
		FontSize:   utils.CoalesceF(ctx.styles.FontSize, 10),
		Color:      colorutil.Black,
		Align:      canvas.AlignCenter,
		LineHeight: 1.2,
	})
	para.Layout(el.W)
	textY := actualY + (el.H-para.Height())/2
	para.Paint(c, canvas.Point{X: el.X, Y: textY})

	return el.H, nil
}
