package render

import (
	"deepprint/internal/canvas"
	"deepprint/internal/colorutil"
	"deepprint/internal/schema"
)

var placeholderGrey = colorutil.RGB{R: 0xd0, G: 0xd0, B: 0xd0}

// renderImage draws a light-grey box with a diagonal cross instead of
// resolving and decoding props.Src. Resolving an asset or URL, decoding it,
// and honouring ObjectFit is future work; see schema.ImageProps.
func renderImage(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	c.DrawRect(canvas.Rect{X: el.X, Y: actualY, W: el.W, H: el.H}, canvas.Style{
		Fill:      true,
		FillColor: placeholderGrey,
	})

	stroke := canvas.Style{StrokeWidth: 1, StrokeColor: colorutil.RGB{R: 0x90, G: 0x90, B: 0x90}}
	c.DrawLine(canvas.Point{X: el.X, Y: actualY}, canvas.Point{X: el.X + el.W, Y: actualY + el.H}, stroke)
	c.DrawLine(canvas.Point{X: el.X + el.W, Y: actualY}, canvas.Point{X: el.X, Y: actualY + el.H}, stroke)

	return el.H, nil
}
