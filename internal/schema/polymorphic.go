package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FontWeight accepts either a named weight ("bold"/"normal") or a numeric
// weight 100-900. Decoding tries the numeric shape first, falling back to
// the string shape, per the wire contract.
type FontWeight struct {
	Numeric   uint16
	Named     string
	isNumeric bool
}

func (f *FontWeight) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		i, err := n.Int64()
		if err != nil {
			return newError("fontWeight", "numeric weight is not an integer: %s", n.String())
		}
		f.Numeric = uint16(i)
		f.isNumeric = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newError("fontWeight", "must be a number or a string")
	}
	f.Named = s
	f.isNumeric = false
	return nil
}

// Bold reports whether this weight should be treated as bold: a numeric
// weight of 700 or more, or the string "bold" (case-insensitive).
func (f *FontWeight) Bold() bool {
	if f == nil {
		return false
	}
	if f.isNumeric {
		return f.Numeric >= 700
	}
	return strings.EqualFold(f.Named, "bold")
}

// TableColumnWidth accepts either a fixed point width or a percentage
// string ("20%"). Decoding tries the fixed numeric shape first.
type TableColumnWidth struct {
	Fixed     float64
	Percent   float64 // parsed out of a "NN%" string
	isFixed   bool
	isPercent bool
}

func (w *TableColumnWidth) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		w.Fixed = f
		w.isFixed = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newError("columns[].width", "must be a number or a percentage string")
	}
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	p, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return newError("columns[].width", "invalid percentage %q", s)
	}
	w.Percent = p
	w.isPercent = true
	return nil
}

// IsAuto reports whether no width was given at all (the field was absent).
func (w *TableColumnWidth) IsAuto() bool {
	return w == nil
}

// IsFixed reports whether the width is a fixed point value.
func (w *TableColumnWidth) IsFixed() bool {
	return w != nil && w.isFixed
}

// IsPercent reports whether the width is a percentage of remaining space.
func (w *TableColumnWidth) IsPercent() bool {
	return w != nil && w.isPercent
}
