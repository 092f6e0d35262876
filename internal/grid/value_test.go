package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
		blank    bool
	}{
		{"blank", Blank, "", true},
		{"plain string", String("Parent"), "Parent", false},
		{"trimmed", String("  Parent \t"), "Parent", false},
		{"line breaks", String("Child\nOne"), "Child One", false},
		{"crlf", String("Child\r\nOne"), "Child One", false},
		{"whitespace only", String("   "), "", true},
		{"integer number", Number(1), "1", false},
		{"fractional number", Number(2.5), "2.5", false},
		{"negative number", Number(-3), "-3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Text())
			assert.Equal(t, tt.blank, tt.value.IsBlank())
		})
	}
}

func TestOf(t *testing.T) {
	v, err := Of(nil)
	require.NoError(t, err)
	assert.Equal(t, KindBlank, v.Kind)

	v, err = Of("x")
	require.NoError(t, err)
	assert.Equal(t, String("x"), v)

	v, err = Of(7)
	require.NoError(t, err)
	assert.Equal(t, Number(7), v)

	_, err = Of(struct{}{})
	require.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "KindBlank", KindBlank.String())
	assert.Equal(t, "KindNumber", KindNumber.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "A1", CellName(1, 1))
	assert.Equal(t, "C12", CellName(12, 3))
	assert.Equal(t, "AA2", CellName(2, 27))
	assert.Equal(t, "R0C1", CellName(0, 1))
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", ColumnName(1))
	assert.Equal(t, "Z", ColumnName(26))
	assert.Equal(t, "AB", ColumnName(28))
	assert.Equal(t, "C0", ColumnName(0))
}

func TestParseRange(t *testing.T) {
	rng, err := ParseRange("B2:C4")
	require.NoError(t, err)
	assert.Equal(t, Range{Top: 2, Left: 2, Bottom: 4, Right: 3}, rng)
	assert.True(t, rng.Contains(3, 3))
	assert.False(t, rng.Contains(1, 2))

	single, err := ParseRange("D5")
	require.NoError(t, err)
	assert.Equal(t, Range{Top: 5, Left: 4, Bottom: 5, Right: 4}, single)

	_, err = ParseRange("not a range")
	require.Error(t, err)
}
