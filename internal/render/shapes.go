package render

import (
	"deepprint/internal/canvas"
	"deepprint/internal/colorutil"
	"deepprint/internal/schema"
)

// defaultStrokeWidth is one millimetre in points, the fallback stroke
// width for any primitive that doesn't specify one.
const defaultStrokeWidth = 2.83

// renderLine strokes from (x, y) to (x+w, y+h). A line's w/h are diagonal
// deltas, not a bounding box — a horizontal rule therefore has h ≈ 0.
func renderLine(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	props := el.Data.(*schema.LineProps)

	c.DrawLine(
		canvas.Point{X: el.X, Y: actualY},
		canvas.Point{X: el.X + el.W, Y: actualY + el.H},
		canvas.Style{
			StrokeWidth: props.StrokeWidthOrDefault(),
			StrokeColor: coalesceColor(props.StrokeColor),
			DashArray:   props.DashArray,
		},
	)
	return el.H, nil
}

// renderRect optionally fills, then optionally strokes, the element box.
// BorderRadius is parsed but not honoured: it is recognised configuration
// only (the source renderer leaves it unapplied).
func renderRect(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	props := el.Data.(*schema.RectProps)

	style := canvas.Style{
		DashArray: props.DashArray,
	}
	if props.FillColor != "" {
		style.Fill = true
		style.FillColor = colorutil.ParseColor(props.FillColor)
	}
	if sw := props.StrokeWidthOrDefault(); sw > 0 {
		style.StrokeWidth = sw
		style.StrokeColor = coalesceColor(props.StrokeColor)
	}

	c.DrawRect(canvas.Rect{X: el.X, Y: actualY, W: el.W, H: el.H}, style)
	return el.H, nil
}

// renderEllipse strokes the bounding oval of the element box. Ellipses are
// never filled.
func renderEllipse(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	props := el.Data.(*schema.EllipseProps)

	c.DrawOval(canvas.Rect{X: el.X, Y: actualY, W: el.W, H: el.H}, canvas.Style{
		StrokeWidth: props.StrokeWidthOrDefault(),
		StrokeColor: coalesceColor(props.StrokeColor),
		DashArray:   props.DashArray,
	})
	return el.H, nil
}

func coalesceColor(s string) colorutil.RGB {
	if s == "" {
		return colorutil.Black
	}
	return colorutil.ParseColor(s)
}
