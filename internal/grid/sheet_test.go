package grid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	cells := map[string]any{
		"A1": "Parent",
		"C1": "Other\nHeader",
		"A2": "ChildOne",
		"B2": "ChildTwo",
		"A3": 1,
		"B3": 2.5,
		"C3": "text",
	}
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, ref, v))
	}

	require.NoError(t, f.MergeCell(sheet, "A1", "B1"))
	require.NoError(t, f.MergeCell(sheet, "C1", "C2"))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

func TestSheet_Cell(t *testing.T) {
	s, err := OpenSheet(writeWorkbook(t), "Sheet1", 16)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "Sheet1", s.Name())

	tests := []struct {
		row, col int
		kind     Kind
		text     string
	}{
		{1, 1, KindString, "Parent"},
		{1, 2, KindString, "Parent"}, // merged into A1
		{1, 3, KindString, "Other Header"},
		{2, 3, KindString, "Other Header"}, // merged into C1
		{2, 2, KindString, "ChildTwo"},
		{3, 1, KindNumber, "1"},
		{3, 2, KindNumber, "2.5"},
		{3, 3, KindString, "text"},
		{4, 1, KindBlank, ""},
	}

	for _, tt := range tests {
		t.Run(CellName(tt.row, tt.col), func(t *testing.T) {
			v, err := s.Cell(tt.row, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.text, v.Text())

			// Second read is served from the cache with the same result.
			again, err := s.Cell(tt.row, tt.col)
			require.NoError(t, err)
			assert.Equal(t, v, again)
		})
	}
}

func TestOpenSheet_MissingSheet(t *testing.T) {
	_, err := OpenSheet(writeWorkbook(t), "Nope", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sheet "Nope" not found`)
}

func TestOpenSheet_MissingFile(t *testing.T) {
	_, err := OpenSheet(filepath.Join(t.TempDir(), "missing.xlsx"), "Sheet1", 0)
	require.Error(t, err)
}

func TestSheet_OutOfRange(t *testing.T) {
	s, err := OpenSheet(writeWorkbook(t), "Sheet1", 0)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Cell(1, 0)
	require.Error(t, err)
}

func TestOpenSheet_ActiveSheetByDefault(t *testing.T) {
	s, err := OpenSheet(writeWorkbook(t), "", 0)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "Sheet1", s.Name())

	v, err := s.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Parent", v.Text())
}
