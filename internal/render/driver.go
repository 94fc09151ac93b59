package render

import (
	"fmt"

	"deepprint/internal/canvas"
	"deepprint/internal/layout"
	"deepprint/internal/schema"
)

// elementRenderer draws one element at its resolved top Y and returns the
// height it actually occupied, which the driver stores in the layout cache
// for later elements to anchor against.
type elementRenderer func(ctx *context, c canvas.Canvas, el schema.Element, actualY float64) (float64, error)

var renderers = map[schema.ElementType]elementRenderer{
	schema.ElementText:    renderText,
	schema.ElementTable:   renderTable,
	schema.ElementImage:   renderImage,
	schema.ElementBarcode: renderBarcode,
	schema.ElementQrcode:  renderQrcode,
	schema.ElementLine:    renderLine,
	schema.ElementRect:    renderRect,
	schema.ElementEllipse: renderEllipse,
}

// Render draws every element of tmpl's canvas, in linkedTo-resolved order,
// onto c. data is the JSON-like value interpolation expressions resolve
// against (typically the result of unmarshalling a JSON data document into
// interface{}).
//
// Render returns the first error encountered. Schema validity is assumed
// (callers parse with schema.Parse first); a linkedTo cycle is reported as
// a *layout.CycleError and aborts before any draw call is issued. A
// per-element failure, when not one of the documented silent policies,
// aborts the render but does not undo draw calls already issued.
func Render(c canvas.Canvas, tmpl *schema.Template, data interface{}) error {
	sorted, err := layout.Sort(tmpl.Canvas.Elements)
	if err != nil {
		return err
	}

	ctx := newContext(data, tmpl.Canvas.Styles, tmpl.Canvas.Width, tmpl.Canvas.Height)

	for _, el := range sorted {
		actualY := ctx.layout.ResolveY(el)

		renderFn, ok := renderers[el.Type]
		if !ok {
			return &ElementError{ID: el.ID, Cause: fmt.Errorf("no renderer registered for element type %q", el.Type)}
		}

		measuredHeight, err := renderFn(ctx, c, el, actualY)
		if err != nil {
			return &ElementError{ID: el.ID, Cause: err}
		}

		ctx.layout.Store(el.ID, layout.Entry{Y: actualY, Height: measuredHeight})
	}

	return nil
}
