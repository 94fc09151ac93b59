// Package canvas defines the drawing surface the render package draws onto.
// It is a contract, not an implementation: concrete backends (see
// internal/fpdfcanvas) satisfy it with a real drawing engine. Keeping the
// contract here lets the render package depend only on shapes and paint
// attributes, never on a specific backend.
package canvas

import "deepprint/internal/colorutil"

// Point is a location in points, measured from the canvas's top-left.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in points.
type Rect struct {
	X, Y, W, H float64
}

// TextAlign is horizontal paragraph alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Style carries paint attributes shared by the primitive draw calls: fill,
// stroke, colour, and an optional dash pattern. A zero StrokeWidth means no
// stroke is drawn; an empty FillColor set via Fill=false means no fill.
type Style struct {
	Fill        bool
	FillColor   colorutil.RGB
	StrokeWidth float64
	StrokeColor colorutil.RGB
	DashArray   []float64
	AntiAlias   bool
}

// TextStyle configures a Paragraph's font and alignment.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	Bold       bool
	Color      colorutil.RGB
	Align      TextAlign
	LineHeight float64
}

// Paragraph is a laid-out block of text produced by Canvas.NewParagraph. It
// must be laid out at a width before its height is meaningful, and painted
// at an origin to actually draw it.
type Paragraph interface {
	// Layout wraps the paragraph's text to the given available width and
	// measures it. It may be called more than once (e.g. for auto-shrink
	// font-size retries); the latest call's width and font size govern
	// subsequent Height/Paint calls.
	Layout(availableWidth float64)

	// Height returns the measured height of the most recent Layout call.
	Height() float64

	// SetFontSize re-sizes the paragraph's font without rebuilding it, for
	// the auto-shrink retry loop.
	SetFontSize(size float64)

	// SetClipWidth overrides the width Paint uses to place and clip the
	// text, independent of the width passed to Layout. Most callers never
	// call this and Paint uses the Layout width unchanged; it exists for
	// single-line (lineBreak disabled) text, which measures against an
	// effectively unbounded width but must still paint within the
	// element's declared box.
	SetClipWidth(width float64)

	// Paint draws the laid-out paragraph with its top-left at origin.
	Paint(c Canvas, origin Point)
}

// Canvas is the drawing surface the render package targets. A concrete
// backend owns the surface (raster image, PDF page, …) and the unit
// system; every coordinate crossing this interface is in points.
type Canvas interface {
	DrawRect(r Rect, style Style)
	DrawOval(r Rect, style Style)
	DrawLine(p1, p2 Point, style Style)

	// NewParagraph builds an unlaid-out paragraph of text with the given
	// style. Call Layout on the result before reading Height or Paint.
	NewParagraph(text string, style TextStyle) Paragraph
}
