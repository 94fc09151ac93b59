// Package render walks a parsed template's elements in layout order and
// issues draw calls against a canvas.Canvas for each one. It is the one
// package that ties schema, interpolate, colorutil, layout, and canvas
// together.
package render

import (
	"deepprint/internal/layout"
	"deepprint/internal/schema"
)

// context carries everything a single render call needs that isn't the
// canvas or the current element: the data document elements interpolate
// against, the global styles an element may inherit, and the layout cache
// being built up as elements are drawn. Font registration lives underneath
// the canvas backend instead, since it's a property of the drawing surface,
// not of any one element.
//
// A context is created fresh by Render and never reused across calls.
type context struct {
	data   interface{}
	styles schema.GlobalStyles
	layout *layout.Cache
	baseW  float64
	baseH  float64
}

func newContext(data interface{}, styles *schema.GlobalStyles, baseW, baseH float64) *context {
	var s schema.GlobalStyles
	if styles != nil {
		s = *styles
	}
	return &context{
		data:   data,
		styles: s,
		layout: layout.NewCache(),
		baseW:  baseW,
		baseH:  baseH,
	}
}
