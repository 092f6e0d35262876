package grid

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xuri/excelize/v2"
)

// DefaultCacheSize is the number of resolved cells a Sheet keeps.
const DefaultCacheSize = 4096

type cellKey struct {
	row, col int
}

// Sheet is a Grid backed by one worksheet of an xlsx workbook.
type Sheet struct {
	file   *excelize.File
	name   string
	merges []Range
	cache  *lru.Cache[cellKey, Value]
	owned  bool
}

// OpenSheet opens the workbook at path and selects the named worksheet.
// The returned Sheet owns the workbook; call Close when done.
func OpenSheet(path, sheet string, cacheSize int) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	s, err := NewSheet(f, sheet, cacheSize)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	s.owned = true

	return s, nil
}

// NewSheet wraps an already opened workbook. The caller keeps ownership of f.
// An empty sheet name selects the active worksheet.
func NewSheet(f *excelize.File, sheet string, cacheSize int) (*Sheet, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet name %q: %w", sheet, err)
	}

	if idx < 0 {
		return nil, fmt.Errorf("sheet %q not found (available: %v)", sheet, f.GetSheetList())
	}

	mergeCells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read merged cells of %q: %w", sheet, err)
	}

	merges := make([]Range, 0, len(mergeCells))

	for _, mc := range mergeCells {
		rng, err := ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, &UnsupportedCellError{Reason: "unsupported merged range", Err: err}
		}

		merges = append(merges, rng)
	}

	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[cellKey, Value](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cell cache: %w", err)
	}

	return &Sheet{file: f, name: sheet, merges: merges, cache: cache}, nil
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Cell implements Grid.
func (s *Sheet) Cell(row, col int) (Value, error) {
	if err := checkBounds(row, col); err != nil {
		return Blank, err
	}

	row, col = resolve(s.merges, row, col)

	key := cellKey{row: row, col: col}
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	ref := CellName(row, col)

	typ, err := s.file.GetCellType(s.name, ref)
	if err != nil {
		return Blank, &UnsupportedCellError{Row: row, Col: col, Reason: "cannot read cell type", Err: err}
	}

	raw, err := s.file.GetCellValue(s.name, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return Blank, &UnsupportedCellError{Row: row, Col: col, Reason: "cannot read cell value", Err: err}
	}

	v := classify(typ, raw)
	s.cache.Add(key, v)

	return v, nil
}

// Close releases the workbook if the Sheet opened it.
func (s *Sheet) Close() error {
	s.cache.Purge()

	if !s.owned {
		return nil
	}

	return s.file.Close()
}

func classify(typ excelize.CellType, raw string) Value {
	if raw == "" {
		return Blank
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return String(raw)
	case excelize.CellTypeBool:
		if raw == "1" {
			return String("TRUE")
		}

		return String("FALSE")
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}

	return String(raw)
}
