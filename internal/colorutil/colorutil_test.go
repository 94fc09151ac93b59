package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, ParseColor("#FF0000"))
	assert.Equal(t, Black, ParseColor("red"))
	assert.Equal(t, Black, ParseColor("#FFF"))
	assert.Equal(t, Black, ParseColor(""))
	assert.Equal(t, RGB{0, 0, 0}, ParseColor("#000000"))
}

func TestMmToPt(t *testing.T) {
	assert.InDelta(t, 2.83465, MmToPt(1), 1e-9)
	assert.InDelta(t, 28.3465, MmToPt(10), 1e-9)
}
