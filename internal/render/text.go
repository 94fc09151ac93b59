package render

import (
	"deepprint/internal/canvas"
	"deepprint/internal/colorutil"
	"deepprint/internal/interpolate"
	"deepprint/internal/schema"
	"deepprint/internal/utils"
)

const minAutoShrinkFontSize = 6.0

func renderText(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error) {
	props := el.Data.(*schema.TextProps)

	content := interpolate.Render(props.Content, ctx.data)
	autoHeight := props.AutoHeight()
	if content == "" && autoHeight {
		return 0, nil
	}

	style := cascadeTextStyle(ctx, props)

	availWidth := el.W
	singleLine := !props.LineBreakEnabled()
	if singleLine {
		// Single-line mode: measure unbounded, then clip the paint width to
		// the element's box.
		availWidth = 1 << 20
	}

	para := c.NewParagraph(content, style)
	para.Layout(availWidth)
	textHeight := para.Height()

	if props.AutoShrink == 1 && el.H > 0 && textHeight > el.H {
		size := style.FontSize
		for textHeight > el.H && size > minAutoShrinkFontSize {
			size = size / 2
			if size < minAutoShrinkFontSize {
				size = minAutoShrinkFontSize
			}
			para.SetFontSize(size)
			para.Layout(availWidth)
			textHeight = para.Height()
			if size <= minAutoShrinkFontSize {
				break
			}
		}
	}

	// Layout measures single-line text against an unbounded width; the
	// paint width still has to clip to the element's actual box, so this
	// is set last, after every Layout call the shrink loop might have made.
	if singleLine {
		para.SetClipWidth(el.W)
	}

	drawY := actualY
	if !autoHeight && el.H > textHeight {
		drawY = actualY + verticalOffset(props.VerticalAlign, el.H, textHeight)
	}

	para.Paint(c, canvas.Point{X: el.X, Y: drawY})

	if autoHeight {
		return textHeight, nil
	}
	return el.H, nil
}

func verticalOffset(align string, boxHeight, contentHeight float64) float64 {
	switch align {
	case "bottom":
		return boxHeight - contentHeight
	case "middle":
		return (boxHeight - contentHeight) / 2
	default: // "top" and unspecified
		return 0
	}
}

func cascadeTextStyle(ctx *context, props *schema.TextProps) canvas.TextStyle {
	family := utils.Coalesce(props.FontFamily, ctx.styles.FontFamily)
	size := utils.CoalesceF(props.FontSize, ctx.styles.FontSize)
	if size == 0 {
		size = 12
	}
	colorStr := utils.Coalesce(props.FontColor, ctx.styles.FontColor)

	bold := false
	if props.FontWeight != nil {
		bold = props.FontWeight.Bold()
	}

	lineHeight := props.LineHeight
	if lineHeight == 0 {
		lineHeight = 1.2
	}

	return canvas.TextStyle{
		FontFamily: family,
		FontSize:   size,
		Bold:       bold,
		Color:      colorutil.ParseColor(colorStr),
		Align:      textAlignFrom(props.TextAlign),
		LineHeight: lineHeight,
	}
}

func textAlignFrom(s string) canvas.TextAlign {
	switch s {
	case "center":
		return canvas.AlignCenter
	case "right":
		return canvas.AlignRight
	default:
		return canvas.AlignLeft
	}
}
