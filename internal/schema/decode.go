package schema

import (
	"encoding/json"
	"fmt"
)

// Parse decodes a DeepPrint template document from JSON, validating id
// uniqueness across the canvas's elements.
func Parse(data []byte) (*Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, newError("template", "invalid JSON: %v", err)
	}

	seen := make(map[string]bool, len(t.Canvas.Elements))
	for _, el := range t.Canvas.Elements {
		if seen[el.ID] {
			return nil, newError(fmt.Sprintf("canvas.elements[id=%s]", el.ID), "duplicate element id")
		}
		seen[el.ID] = true
	}

	return &t, nil
}

type elementEnvelope struct {
	ID       string      `json:"id"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	W        float64     `json:"w"`
	H        float64     `json:"h"`
	LinkedTo *string     `json:"linkedTo,omitempty"`
	Type     ElementType `json:"type"`
}

// UnmarshalJSON decodes the flattened wire representation of an Element:
// common box fields plus linkedTo plus the type-specific fields, all in one
// JSON object, with the variant selected by "type".
func (e *Element) UnmarshalJSON(data []byte) error {
	var env elementEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return newError("element", "invalid JSON: %v", err)
	}
	if env.ID == "" {
		return newError("element", "missing required field \"id\"")
	}
	if env.Type == "" {
		return newError(fmt.Sprintf("element[id=%s]", env.ID), "missing required field \"type\"")
	}
	if env.W < 0 || env.H < 0 {
		return newError(fmt.Sprintf("element[id=%s]", env.ID), "w and h must be non-negative")
	}

	e.ID = env.ID
	e.X, e.Y, e.W, e.H = env.X, env.Y, env.W, env.H
	e.LinkedTo = env.LinkedTo
	e.Type = env.Type

	var payload ElementData
	switch env.Type {
	case ElementText:
		payload = new(TextProps)
	case ElementTable:
		payload = new(TableProps)
	case ElementImage:
		payload = new(ImageProps)
	case ElementBarcode:
		payload = new(BarcodeProps)
	case ElementQrcode:
		payload = new(QrcodeProps)
	case ElementLine:
		payload = new(LineProps)
	case ElementRect:
		payload = new(RectProps)
	case ElementEllipse:
		payload = new(EllipseProps)
	default:
		return newError(fmt.Sprintf("element[id=%s]", env.ID), "unknown element type %q", env.Type)
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return newError(fmt.Sprintf("element[id=%s]", env.ID), "invalid %s payload: %v", env.Type, err)
	}
	e.Data = payload

	return nil
}
