// Package fpdfcanvas adapts github.com/go-pdf/fpdf to the canvas.Canvas
// contract, so the render package can draw onto a real PDF page without
// knowing anything about fpdf's API. The backend is configured in points
// ("pt") so coordinates pass through unconverted from the template.
package fpdfcanvas

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"deepprint/internal/cache"
	"deepprint/internal/canvas"
)

// coreFonts are the family names fpdf already knows how to render without
// an explicit AddFont call.
var coreFonts = map[string]bool{
	"helvetica": true, "arial": true, "courier": true,
	"times": true, "symbol": true, "zapfdingbats": true,
}

// Backend is a canvas.Canvas backed by an *fpdf.Fpdf page. It is scoped to
// a single render call: construct one per render, draw onto it, then let
// the caller output or save the underlying document.
type Backend struct {
	pdf     *fpdf.Fpdf
	fonts   *cache.FontCache
	fontDir string
}

// New wraps an already-initialised, page-added *fpdf.Fpdf document. The
// caller owns the document's lifecycle (AddPage, Output, Close). fontDir is
// where non-core font families are loaded from; it may be empty if the
// template only uses core families (Helvetica/Arial/Courier/Times/...).
func New(pdf *fpdf.Fpdf, fonts *cache.FontCache, fontDir string) *Backend {
	return &Backend{pdf: pdf, fonts: fonts, fontDir: fontDir}
}

// ensureFont registers family/style with the underlying document the first
// time it's seen, mirroring the source generator's setupFonts: core
// families need no registration, everything else is loaded once from
// fontDir and the registration is remembered in the process-wide cache so a
// later render (or another element in this one) doesn't reparse the file.
func (b *Backend) ensureFont(family, style string) {
	if coreFonts[strings.ToLower(family)] {
		return
	}
	if b.fonts.IsLoaded(family, style) {
		return
	}
	if b.fontDir == "" {
		return
	}
	fileName := family + ".ttf"
	if style == "B" {
		fileName = family + "B.ttf"
	}
	if _, err := os.Stat(filepath.Join(b.fontDir, fileName)); err != nil {
		return
	}
	b.pdf.AddUTF8Font(family, style, filepath.Join(b.fontDir, fileName))
	b.fonts.MarkLoaded(family, style)
}

// NewDocument builds a single-page fpdf document sized to w×h points, in
// the given fpdf orientation ("P" or "L"), ready to be wrapped with New.
func NewDocument(w, h float64, orientation string) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		SizeStr:        "",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
		FontDirStr:     "",
	})
	pdf.AddPage()
	return pdf
}

func applyDash(pdf *fpdf.Fpdf, dash []float64) {
	if len(dash) == 0 {
		pdf.SetDashPattern(nil, 0)
		return
	}
	pdf.SetDashPattern(dash, 0)
}

// DrawRect fills then strokes a rectangle per style.
func (b *Backend) DrawRect(r canvas.Rect, style canvas.Style) {
	mode := rectMode(style)
	if mode == "" {
		return
	}
	if style.Fill {
		b.pdf.SetFillColor(int(style.FillColor.R), int(style.FillColor.G), int(style.FillColor.B))
	}
	if style.StrokeWidth > 0 {
		b.pdf.SetDrawColor(int(style.StrokeColor.R), int(style.StrokeColor.G), int(style.StrokeColor.B))
		b.pdf.SetLineWidth(style.StrokeWidth)
		applyDash(b.pdf, style.DashArray)
	}
	b.pdf.Rect(r.X, r.Y, r.W, r.H, mode)
	applyDash(b.pdf, nil)
}

func rectMode(style canvas.Style) string {
	switch {
	case style.Fill && style.StrokeWidth > 0:
		return "FD"
	case style.Fill:
		return "F"
	case style.StrokeWidth > 0:
		return "D"
	default:
		return ""
	}
}

// DrawOval strokes the bounding oval of r. Ellipses are never filled by the
// renderers that call this, matching the source behaviour.
func (b *Backend) DrawOval(r canvas.Rect, style canvas.Style) {
	if style.StrokeWidth <= 0 {
		return
	}
	b.pdf.SetDrawColor(int(style.StrokeColor.R), int(style.StrokeColor.G), int(style.StrokeColor.B))
	b.pdf.SetLineWidth(style.StrokeWidth)
	applyDash(b.pdf, style.DashArray)
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	b.pdf.Ellipse(cx, cy, r.W/2, r.H/2, 0, "D")
	applyDash(b.pdf, nil)
}

// DrawLine strokes a segment from p1 to p2.
func (b *Backend) DrawLine(p1, p2 canvas.Point, style canvas.Style) {
	if style.StrokeWidth <= 0 {
		return
	}
	b.pdf.SetDrawColor(int(style.StrokeColor.R), int(style.StrokeColor.G), int(style.StrokeColor.B))
	b.pdf.SetLineWidth(style.StrokeWidth)
	applyDash(b.pdf, style.DashArray)
	b.pdf.Line(p1.X, p1.Y, p2.X, p2.Y)
	applyDash(b.pdf, nil)
}

// NewParagraph returns an unlaid-out paragraph bound to this backend's
// document, so it can measure string widths with the document's current
// font metrics.
func (b *Backend) NewParagraph(text string, style canvas.TextStyle) canvas.Paragraph {
	return &paragraph{backend: b, text: text, style: style}
}

// paragraph wraps text to a width by greedy word-wrap, using fpdf's string
// width measurement for the configured font. It has no visual state until
// Layout is called.
type paragraph struct {
	backend *Backend
	text    string
	style   canvas.TextStyle

	width     float64
	clipWidth float64
	lines     []string
	height    float64
}

func (p *paragraph) fontStyle() string {
	if p.style.Bold {
		return "B"
	}
	return ""
}

func (p *paragraph) setFont() {
	style := p.fontStyle()
	p.backend.ensureFont(p.style.FontFamily, style)
	p.backend.pdf.SetFont(p.style.FontFamily, style, p.style.FontSize)
}

func (p *paragraph) SetFontSize(size float64) {
	p.style.FontSize = size
}

// Layout wraps p.text into lines that each fit within availableWidth,
// splitting on whitespace; a single word wider than availableWidth is kept
// whole on its own line rather than broken mid-word.
func (p *paragraph) Layout(availableWidth float64) {
	p.width = availableWidth
	p.clipWidth = availableWidth
	p.setFont()

	var lines []string
	for _, paragraphLine := range strings.Split(p.text, "\n") {
		words := strings.Fields(paragraphLine)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			candidate := current + " " + w
			if p.backend.pdf.GetStringWidth(candidate) <= availableWidth || availableWidth <= 0 {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = w
		}
		lines = append(lines, current)
	}
	p.lines = lines

	lineHeight := p.style.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.2
	}
	p.height = float64(len(lines)) * p.style.FontSize * lineHeight
}

func (p *paragraph) Height() float64 {
	return p.height
}

func (p *paragraph) SetClipWidth(width float64) {
	p.clipWidth = width
}

func (p *paragraph) Paint(c canvas.Canvas, origin canvas.Point) {
	b, ok := c.(*Backend)
	if !ok {
		return
	}
	p.setFont()
	b.pdf.SetTextColor(int(p.style.Color.R), int(p.style.Color.G), int(p.style.Color.B))

	lineHeight := p.style.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.2
	}
	lh := p.style.FontSize * lineHeight

	align := alignString(p.style.Align)
	y := origin.Y
	for _, line := range p.lines {
		b.pdf.SetXY(origin.X, y)
		b.pdf.CellFormat(p.clipWidth, lh, line, "", 0, align, false, 0, "")
		y += lh
	}
}

func alignString(a canvas.TextAlign) string {
	switch a {
	case canvas.AlignCenter:
		return "C"
	case canvas.AlignRight:
		return "R"
	default:
		return "L"
	}
}
