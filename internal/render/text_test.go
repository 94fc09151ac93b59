package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepprint/internal/schema"
)

func TestRenderText_EmptyContentAutoHeightIsNoOp(t *testing.T) {
	el := schema.Element{
		ID: "T", X: 0, Y: 0, W: 100, H: 0,
		Type: schema.ElementText,
		Data: &schema.TextProps{Content: "", AutoHeightField: boolPtr(true)},
	}
	tmpl := templateWith(el)
	rc := &recordingCanvas{}

	require.NoError(t, Render(rc, tmpl, map[string]interface{}{}))
	assert.Empty(t, rc.calls)
}

func TestRenderText_Interpolation(t *testing.T) {
	el := schema.Element{
		ID: "T", X: 0, Y: 0, W: 200, H: 0,
		Type: schema.ElementText,
		Data: &schema.TextProps{Content: "Hello {{user.name}}!", FontSize: 12, AutoHeightField: boolPtr(true)},
	}
	tmpl := templateWith(el)

	rc := &recordingCanvas{}
	data := map[string]interface{}{"user": map[string]interface{}{"name": "Ada"}}
	require.NoError(t, Render(rc, tmpl, data))
	require.Len(t, rc.calls, 1)
	assert.Contains(t, rc.calls[0], `"Hello Ada!"`)

	rc2 := &recordingCanvas{}
	require.NoError(t, Render(rc2, tmpl, map[string]interface{}{}))
	require.Len(t, rc2.calls, 1)
	assert.Contains(t, rc2.calls[0], `"Hello !"`)
}

func TestRenderText_VerticalAlignMiddle(t *testing.T) {
	el := schema.Element{
		ID: "T", X: 0, Y: 0, W: 200, H: 40,
		Type: schema.ElementText,
		Data: &schema.TextProps{
			Content:         "line",
			FontSize:        10,
			LineHeight:      2.0, // 1 line * 10 * 2.0 = 20 text height
			VerticalAlign:   "middle",
			AutoHeightField: boolPtr(false),
		},
	}
	tmpl := templateWith(el)
	rc := &recordingCanvas{}

	require.NoError(t, Render(rc, tmpl, map[string]interface{}{}))
	require.Len(t, rc.calls, 1)
	// actualY(0) + (40-20)/2 = 10
	assert.Contains(t, rc.calls[0], "0.00,10.00")
}

func TestRenderText_ReturnsElementHeightWhenNotAutoHeight(t *testing.T) {
	header := textEl("H", 0, 0, 100, 30, "", "Header")
	sub := schema.Element{
		ID: "S", X: 0, Y: 5, W: 100, H: 0,
		LinkedTo: strPtr("H"),
		Type:     schema.ElementText,
		Data:     &schema.TextProps{Content: "Sub", FontSize: 10, AutoHeightField: boolPtr(true)},
	}
	tmpl := templateWith(header, sub)
	rc := &recordingCanvas{}

	require.NoError(t, Render(rc, tmpl, map[string]interface{}{}))
	// header's declared h=30 governs the anchor even though its measured
	// text is shorter, because autoHeight is false for it.
	require.Len(t, rc.calls, 2)
	assert.Contains(t, rc.calls[1], "35.00")
}

func intPtr(i int) *int { return &i }

func TestRenderText_SingleLineClipsPaintWidthToElementBox(t *testing.T) {
	el := schema.Element{
		ID: "T", X: 0, Y: 0, W: 120, H: 20,
		Type: schema.ElementText,
		Data: &schema.TextProps{
			Content:         "centered",
			FontSize:        10,
			TextAlign:       "center",
			LineBreak:       intPtr(0),
			AutoHeightField: boolPtr(false),
		},
	}
	tmpl := templateWith(el)
	rc := &recordingCanvas{}

	require.NoError(t, Render(rc, tmpl, map[string]interface{}{}))
	require.Len(t, rc.calls, 1)
	// Measured against an effectively unbounded width, but painted clipped
	// to the element's declared width (120), not the measurement width.
	assert.Contains(t, rc.calls[0], "w=120.00")
}

func strPtr(s string) *string { return &s }
