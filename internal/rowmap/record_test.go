package rowmap

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_SetKeepsInsertionOrder(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.Set([]string{"zeta"}, "1"))
	require.NoError(t, rec.Set([]string{"parent", "b"}, "2"))
	require.NoError(t, rec.Set([]string{"alpha"}, nil))
	require.NoError(t, rec.Set([]string{"parent", "a"}, "3"))

	assert.Equal(t, []string{"zeta", "parent", "alpha"}, rec.Keys())
	assert.Equal(t, 3, rec.Len())

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"1","parent":{"b":"2","a":"3"},"alpha":null}`, string(data))
}

func TestRecord_Get(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.Set([]string{"p", "c"}, "v"))

	v, ok := rec.Get("p", "c")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = rec.Get("p", "missing")
	assert.False(t, ok)

	_, ok = rec.Get("p", "c", "deeper")
	assert.False(t, ok)

	nested, ok := rec.Get("p")
	require.True(t, ok)
	assert.IsType(t, &Record{}, nested)
}

func TestRecord_SetOverwritesScalar(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.Set([]string{"a"}, "1"))
	require.NoError(t, rec.Set([]string{"a"}, "2"))

	v, _ := rec.Get("a")
	assert.Equal(t, "2", v)
	assert.Equal(t, []string{"a"}, rec.Keys())
}

func TestRecord_SetConflicts(t *testing.T) {
	tests := []struct {
		name   string
		first  []string
		second []string
	}{
		{name: "descend through value", first: []string{"a"}, second: []string{"a", "b"}},
		{name: "replace nested fields", first: []string{"a", "b"}, second: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord()
			require.NoError(t, rec.Set(tt.first, "x"))

			err := rec.Set(tt.second, "y")
			require.Error(t, err)
			assert.Contains(t, err.Error(), `"a"`)
		})
	}
}

func TestRecord_SetEmptyPath(t *testing.T) {
	assert.ErrorIs(t, NewRecord().Set(nil, "x"), ErrEmptyPath)
}

func TestRecord_Map(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.Set([]string{"p", "c"}, "v"))
	require.NoError(t, rec.Set([]string{"q"}, nil))

	assert.Equal(t, map[string]any{
		"p": map[string]any{"c": "v"},
		"q": nil,
	}, rec.Map())
}

func TestRecord_MarshalEscapesKeys(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, rec.Set([]string{`quo"te`}, "line\nbreak"))

	data, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"quo\"te":"line\nbreak"}`, string(data))
}
