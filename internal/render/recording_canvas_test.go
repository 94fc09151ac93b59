package render

import (
	"fmt"
	"strings"

	"deepprint/internal/canvas"
)

// recordingCanvas is a canvas.Canvas test double that records every draw
// call as a string, so tests can assert on exact draw-call sequences
// without a real PDF backend.
type recordingCanvas struct {
	calls []string
}

func (r *recordingCanvas) record(s string) {
	r.calls = append(r.calls, s)
}

func (r *recordingCanvas) DrawRect(rect canvas.Rect, style canvas.Style) {
	r.record(fmt.Sprintf("rect(%.2f,%.2f,%.2f,%.2f fill=%v stroke=%.2f)", rect.X, rect.Y, rect.W, rect.H, style.Fill, style.StrokeWidth))
}

func (r *recordingCanvas) DrawOval(rect canvas.Rect, style canvas.Style) {
	r.record(fmt.Sprintf("oval(%.2f,%.2f,%.2f,%.2f stroke=%.2f)", rect.X, rect.Y, rect.W, rect.H, style.StrokeWidth))
}

func (r *recordingCanvas) DrawLine(p1, p2 canvas.Point, style canvas.Style) {
	r.record(fmt.Sprintf("line(%.2f,%.2f -> %.2f,%.2f stroke=%.2f)", p1.X, p1.Y, p2.X, p2.Y, style.StrokeWidth))
}

func (r *recordingCanvas) NewParagraph(text string, style canvas.TextStyle) canvas.Paragraph {
	return &recordingParagraph{canvas: r, text: text, style: style}
}

func (r *recordingCanvas) rectCount() int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, "rect(") {
			n++
		}
	}
	return n
}

// recordingParagraph is a trivial paragraph: one line per explicit "\n",
// height = lines * fontSize * lineHeight, no actual wrapping by width. That
// is enough to exercise the render package's measurement/placement logic
// without depending on a real font metrics table.
type recordingParagraph struct {
	canvas    *recordingCanvas
	text      string
	style     canvas.TextStyle
	width     float64
	clipWidth float64
	height    float64
}

func (p *recordingParagraph) Layout(availableWidth float64) {
	p.width = availableWidth
	p.clipWidth = availableWidth
	lines := 1
	if p.text != "" {
		lines = len(strings.Split(p.text, "\n"))
	} else {
		lines = 0
	}
	lh := p.style.LineHeight
	if lh <= 0 {
		lh = 1.2
	}
	p.height = float64(lines) * p.style.FontSize * lh
}

func (p *recordingParagraph) Height() float64 {
	return p.height
}

func (p *recordingParagraph) SetFontSize(size float64) {
	p.style.FontSize = size
}

func (p *recordingParagraph) SetClipWidth(width float64) {
	p.clipWidth = width
}

func (p *recordingParagraph) Paint(c canvas.Canvas, origin canvas.Point) {
	rc, ok := c.(*recordingCanvas)
	if !ok {
		return
	}
	rc.record(fmt.Sprintf("text(%.2f,%.2f w=%.2f %q)", origin.X, origin.Y, p.clipWidth, p.text))
}
