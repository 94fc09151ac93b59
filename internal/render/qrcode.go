package render

import (
	qrcode "github.com/skip2/go-qrcode"

	"deepprint/internal/canvas"
	"deepprint/internal/colorutil"
	"deepprint/internal/interpolate"
	"deepprint/internal/schema"
)

var correctionLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

func renderQrcode(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	props := el.Data.(*schema.QrcodeProps)

	value := interpolate.Render(props.Value, ctx.data)
	if value == "" {
		return el.H, nil
	}

	level, ok := correctionLevels[props.CorrectionLevel]
	if !ok {
		level = qrcode.Medium
	}

	q, err := qrcode.New(value, level)
	if err != nil {
		// Encode failure (length exceeded, invalid characters): draw
		// nothing, per the documented silent policy.
		return el.H, nil
	}

	modules := q.Bitmap()
	n := len(modules)
	if n == 0 {
		return el.H, nil
	}

	renderSize := props.Size
	if renderSize == 0 {
		renderSize = el.W
		if el.H < renderSize {
			renderSize = el.H
		}
	}
	modulePx := renderSize / float64(n)

	for r, row := range modules {
		for col, dark := range row {
			if !dark {
				continue
			}
			c.DrawRect(canvas.Rect{
				X: el.X + float64(col)*modulePx,
				Y: actualY + float64(r)*modulePx,
				W: modulePx,
				H: modulePx,
			}, canvas.Style{
				Fill:      true,
				FillColor: colorutil.Black,
				AntiAlias: false,
			})
		}
	}

	return el.H, nil
}
