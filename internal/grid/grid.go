package grid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is a read-only view of a rectangular cell space.
// Rows and columns are 1-indexed.
type Grid interface {
	Cell(row, col int) (Value, error)
}

// UnsupportedCellError is returned when a cell reference cannot be resolved.
type UnsupportedCellError struct {
	Row    int
	Col    int
	Reason string
	Err    error
}

func (e *UnsupportedCellError) Error() string {
	msg := fmt.Sprintf("unsupported cell R%dC%d: %s", e.Row, e.Col, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *UnsupportedCellError) Unwrap() error {
	return e.Err
}

// CellName returns the A1-style name of a cell, e.g. "C12".
// Coordinates outside the worksheet limits are rendered as "R<row>C<col>".
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row, col)
	}

	return name
}

// ColumnName returns the column letters of a 1-indexed column, e.g. "AB".
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Sprintf("C%d", col)
	}

	return name
}

func checkBounds(row, col int) error {
	if row < 1 || col < 1 || row > excelize.TotalRows || col > excelize.MaxColumns {
		return &UnsupportedCellError{Row: row, Col: col, Reason: "coordinate out of range"}
	}

	return nil
}

// Range is an inclusive rectangular cell range.
type Range struct {
	Top, Left, Bottom, Right int
}

// ParseRange parses an "A1:B2" range reference. A single cell name is a
// one-cell range.
func ParseRange(ref string) (Range, error) {
	first, last, found := strings.Cut(ref, ":")
	if !found {
		last = first
	}

	left, top, err := excelize.CellNameToCoordinates(first)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	right, bottom, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if right < left {
		left, right = right, left
	}

	if bottom < top {
		top, bottom = bottom, top
	}

	return Range{Top: top, Left: left, Bottom: bottom, Right: right}, nil
}

// Contains reports whether the cell lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
}

// resolve maps a cell inside a merged range to the range's anchor.
func resolve(merges []Range, row, col int) (int, int) {
	for _, m := range merges {
		if m.Contains(row, col) {
			return m.Top, m.Left
		}
	}

	return row, col
}
