package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"deepprint/internal/schema"
)

// fixedWidth and percentWidth round-trip through TableColumnWidth's
// UnmarshalJSON so tests build columns the same way the schema package
// would from wire JSON.
func fixedWidth(v float64) *schema.TableColumnWidth {
	w := &schema.TableColumnWidth{}
	data, _ := json.Marshal(v)
	_ = w.UnmarshalJSON(data)
	return w
}

func percentWidth(s string) *schema.TableColumnWidth {
	w := &schema.TableColumnWidth{}
	data, _ := json.Marshal(s)
	_ = w.UnmarshalJSON(data)
	return w
}

func TestResolveColumnWidths_MixedFixedPercentAuto(t *testing.T) {
	columns := []schema.TableColumn{
		{Field: "a", Width: fixedWidth(50)},
		{Field: "b", Width: percentWidth("50%")},
		{Field: "c", Width: nil},
	}
	widths := resolveColumnWidths(columns, 200)
	assert.InDeltaSlice(t, []float64{50, 75, 75}, widths, 1e-9)
}

func TestResolveColumnWidths_PercentThenAuto(t *testing.T) {
	columns := []schema.TableColumn{
		{Field: "a", Width: percentWidth("100%")},
		{Field: "b", Width: nil},
	}
	widths := resolveColumnWidths(columns, 100)
	assert.InDeltaSlice(t, []float64{100, 0}, widths, 1e-9)
}

func TestResolveColumnWidths_PercentAgainstRemainingNotBase(t *testing.T) {
	columns := []schema.TableColumn{
		{Field: "a", Width: percentWidth("50%")},
		{Field: "b", Width: percentWidth("20%")},
		{Field: "c", Width: percentWidth("30%")},
	}
	widths := resolveColumnWidths(columns, 340)
	assert.InDeltaSlice(t, []float64{170, 68, 102}, widths, 1e-9)
}
