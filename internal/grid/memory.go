package grid

import "fmt"

// Memory is an in-memory Grid.
type Memory struct {
	rows   [][]Value
	merges []Range
}

// NewMemory builds a grid from row-major plain values (see Of).
// rows[0][0] is cell A1.
func NewMemory(rows [][]any) (*Memory, error) {
	m := &Memory{rows: make([][]Value, len(rows))}

	for r, row := range rows {
		m.rows[r] = make([]Value, len(row))

		for c, raw := range row {
			v, err := Of(raw)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", CellName(r+1, c+1), err)
			}

			m.rows[r][c] = v
		}
	}

	return m, nil
}

// Merge declares a merged range such as "A1:B1".
func (m *Memory) Merge(ref string) error {
	rng, err := ParseRange(ref)
	if err != nil {
		return err
	}

	for _, existing := range m.merges {
		if overlaps(existing, rng) {
			return fmt.Errorf("merged range %s overlaps an existing merged range", ref)
		}
	}

	m.merges = append(m.merges, rng)

	return nil
}

// Cell implements Grid.
func (m *Memory) Cell(row, col int) (Value, error) {
	if err := checkBounds(row, col); err != nil {
		return Blank, err
	}

	row, col = resolve(m.merges, row, col)
	if row > len(m.rows) || col > len(m.rows[row-1]) {
		return Blank, nil
	}

	return m.rows[row-1][col-1], nil
}

func overlaps(a, b Range) bool {
	return a.Left <= b.Right && b.Left <= a.Right && a.Top <= b.Bottom && b.Top <= a.Bottom
}
