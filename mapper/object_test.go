package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpgainz/companies-house/registry"
)

func TestObject_Reads(t *testing.T) {
	t.Parallel()

	o := NewObject(map[string]any{
		"name":    "x",
		"flag":    true,
		"count":   json.Number("7"),
		"float":   float64(4),
		"null":    nil,
		"codes":   []any{"a", "b"},
		"nested":  map[string]any{"inner": "y"},
		"objects": []any{map[string]any{"k": "v"}},
	})

	assert.Equal(t, "x", o.String("name"))
	assert.True(t, o.Bool("flag"))
	assert.Equal(t, 7, o.Int("count"))
	assert.Equal(t, 4, o.Int("float"))
	assert.Nil(t, o.OptString("null"))
	assert.Nil(t, o.OptString("absent"))
	assert.Equal(t, []string{"a", "b"}, o.Strings("codes"))
	assert.Nil(t, o.Strings("absent"))
	assert.Equal(t, "y", o.Child("nested").String("inner"))

	children := o.Children("objects")
	require.Len(t, children, 1)
	assert.Equal(t, "v", children[0].String("k"))

	_, ok := o.OptChild("absent")
	assert.False(t, ok)

	assert.NoError(t, o.Err())
}

func TestObject_Problems(t *testing.T) {
	t.Parallel()

	o := NewObject(map[string]any{
		"name":   json.Number("1"),
		"null":   nil,
		"codes":  []any{"a", json.Number("2")},
		"nested": "flat",
		"list":   []any{"scalar"},
	})

	o.String("name")
	o.String("null")
	o.Strings("codes")
	o.OptChild("nested")
	o.Children("list")
	o.Children("absent")

	err := o.Err()
	require.ErrorIs(t, err, registry.ErrMalformedResponse)
	assert.Equal(t,
		"malformed response: name is not a string, null is missing, codes[1] is not a string, "+
			"nested is not an object, list[0] is not an object, absent is missing",
		err.Error())
}
