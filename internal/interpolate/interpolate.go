// Package interpolate expands "{{path.to.field}}" placeholders in template
// strings against a JSON-like data tree, and extracts table data arrays by
// dotted path.
package interpolate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// placeholderRE matches {{ path }} with dotted, alphanumeric/underscore
// path segments and tolerated interior whitespace. Compiled once at package
// init: pure and initialisation-order-independent.
var placeholderRE = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// Render replaces every {{path}} occurrence in tmpl with the stringified
// value found at that dotted path in data. A missing path yields the empty
// string, never the original token.
func Render(tmpl string, data interface{}) string {
	return placeholderRE.ReplaceAllStringFunc(tmpl, func(match string) string {
		sub := placeholderRE.FindStringSubmatch(match)
		if len(sub) != 2 {
			return ""
		}
		return stringify(valueAtPath(data, sub[1]))
	})
}

// GetArray resolves a column's "data" expression — the entire expression is
// a single "{{path}}" token — to the underlying array, stripping braces and
// surrounding whitespace. Returns (nil, false) if the terminal value isn't
// an array.
func GetArray(expr string, data interface{}) ([]interface{}, bool) {
	path := strings.Trim(strings.TrimSpace(expr), "{} ")
	path = strings.TrimSpace(path)
	v := valueAtPath(data, path)
	arr, ok := v.([]interface{})
	return arr, ok
}

// GetValueFromObj looks up a single field key (not a dotted path) on obj,
// returning its stringified scalar or the empty string.
func GetValueFromObj(obj interface{}, key string) string {
	m, ok := obj.(map[string]interface{})
	if !ok {
		return ""
	}
	v, ok := m[key]
	if !ok {
		return ""
	}
	return stringify(v)
}

// valueAtPath traverses data step by step following object keys. Array
// indexing is not supported in path expressions. Returns nil if any step
// fails to resolve.
func valueAtPath(data interface{}, path string) interface{} {
	if path == "" {
		return nil
	}
	current := data
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		v, ok := m[part]
		if !ok {
			return nil
		}
		current = v
	}
	return current
}

// stringify converts a resolved scalar to its substitution text: strings
// as-is, numbers in canonical JSON decimal form, booleans as "true"/"false",
// and null/containers/missing as the empty string.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
