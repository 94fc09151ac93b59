package render

import (
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepprint/internal/schema"
)

func TestRenderQrcode_DrawsOneRectPerDarkModule(t *testing.T) {
	el := schema.Element{
		ID: "Q", X: 0, Y: 0, W: 80, H: 80,
		Type: schema.ElementQrcode,
		Data: &schema.QrcodeProps{Value: "hello"},
	}
	tmpl := templateWith(el)
	rc := &recordingCanvas{}

	require.NoError(t, Render(rc, tmpl, map[string]interface{}{}))

	q, err := qrcode.New("hello", qrcode.Medium)
	require.NoError(t, err)
	want := 0
	for _, row := range q.Bitmap() {
		for _, dark := range row {
			if dark {
				want++
			}
		}
	}

	assert.Equal(t, want, rc.rectCount())
}

func TestRenderQrcode_EmptyValueDrawsNothing(t *testing.T) {
	el := schema.Element{
		ID: "Q", X: 0, Y: 0, W: 80, H: 80,
		Type: schema.ElementQrcode,
		Data: &schema.QrcodeProps{Value: ""},
	}
	tmpl := templateWith(el)
	rc := &recordingCanvas{}

	require.NoError(t, Render(rc, tmpl, map[string]interface{}{}))
	assert.Empty(t, rc.calls)
}
