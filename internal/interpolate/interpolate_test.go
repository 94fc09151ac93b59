package interpolate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeData(t *testing.T, jsonStr string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &v))
	return v
}

func TestRender_NestedPath(t *testing.T) {
	data := decodeData(t, `{"x":{"y":"Ada"}}`)
	assert.Equal(t, "Ada", Render("{{x.y}}", data))
}

func TestRender_MissingPathYieldsEmpty(t *testing.T) {
	data := decodeData(t, `{}`)
	assert.Equal(t, "", Render("{{x.y}}", data))
}

func TestRender_WhitespaceTolerated(t *testing.T) {
	data := decodeData(t, `{"a":"1"}`)
	assert.Equal(t, "1", Render("{{  a  }}", data))
}

func TestRender_HelloAda(t *testing.T) {
	data := decodeData(t, `{"user":{"name":"Ada"}}`)
	assert.Equal(t, "Hello Ada!", Render("Hello {{user.name}}!", data))

	empty := decodeData(t, `{}`)
	assert.Equal(t, "Hello !", Render("Hello {{user.name}}!", empty))
}

func TestRender_NumberAndBool(t *testing.T) {
	data := decodeData(t, `{"n": 12.5, "b": true, "nil": null}`)
	assert.Equal(t, "12.5", Render("{{n}}", data))
	assert.Equal(t, "true", Render("{{b}}", data))
	assert.Equal(t, "", Render("{{nil}}", data))
}

func TestGetArray(t *testing.T) {
	data := decodeData(t, `{"order":{"items":[{"name":"a"},{"name":"b"}]}}`)
	arr, ok := GetArray("{{order.items}}", data)
	require.True(t, ok)
	assert.Len(t, arr, 2)
}

func TestGetArray_NotAnArray(t *testing.T) {
	data := decodeData(t, `{"order":{"items":"nope"}}`)
	_, ok := GetArray("{{order.items}}", data)
	assert.False(t, ok)
}

func TestGetValueFromObj(t *testing.T) {
	row := decodeData(t, `{"name":"widget","qty":3}`)
	assert.Equal(t, "widget", GetValueFromObj(row, "name"))
	assert.Equal(t, "3", GetValueFromObj(row, "qty"))
	assert.Equal(t, "", GetValueFromObj(row, "missing"))
}
