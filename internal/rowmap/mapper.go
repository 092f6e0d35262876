package rowmap

import (
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"xlmapper/internal/grid"
	"xlmapper/internal/schema"
)

// ErrInvalidStart is returned for a start row below 1.
var ErrInvalidStart = errors.New("start row must be at least 1")

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger used for debug events.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

type column struct {
	col  int
	path []string
}

// Mapper reads data rows of a grid through a verified schema tree.
// The tree is only read; it may be shared with other readers.
type Mapper struct {
	grid    grid.Grid
	columns []column
	logger  *zap.Logger
}

// New returns a mapper for the leaves of root. Leaf columns and key paths
// are computed once here. Leaves below a skip node are left out.
func New(root *schema.Node, g grid.Grid, opts ...Option) *Mapper {
	m := &Mapper{grid: g, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}

	for _, leaf := range root.Leaves() {
		if leaf.Skipped() {
			continue
		}

		m.columns = append(m.columns, column{col: leaf.Column(), path: leaf.KeyPath()})
	}

	return m
}

// Columns returns the number of extracted columns.
func (m *Mapper) Columns() int {
	return len(m.columns)
}

// Rows returns the records of rows start, start+1, ... up to, excluding,
// the first row whose first column is blank. The sequence is single-use:
// ranging over it again resumes after the last record produced. A read
// error is yielded once and ends the sequence.
func (m *Mapper) Rows(start int) iter.Seq2[*Record, error] {
	row := start
	done := false

	return func(yield func(*Record, error) bool) {
		if done {
			return
		}

		if start < 1 {
			done = true
			yield(nil, fmt.Errorf("%w: %d", ErrInvalidStart, start))

			return
		}

		for !done {
			rec, err := m.row(row)
			if err != nil {
				done = true
				yield(nil, fmt.Errorf("row %d: %w", row, err))

				return
			}

			if rec == nil {
				done = true
				m.logger.Debug("end of data", zap.Int("row", row), zap.Int("records", row-start))

				return
			}

			row++

			if !yield(rec, nil) {
				return
			}
		}
	}
}

// row maps one row, returning nil at the end of data.
func (m *Mapper) row(row int) (*Record, error) {
	if len(m.columns) == 0 {
		return nil, nil
	}

	rec := NewRecord()

	for i, c := range m.columns {
		v, err := m.grid.Cell(row, c.col)
		if err != nil {
			return nil, err
		}

		if v.IsBlank() {
			if i == 0 {
				return nil, nil
			}

			if err := rec.Set(c.path, nil); err != nil {
				return nil, err
			}

			continue
		}

		if err := rec.Set(c.path, v.Text()); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// Collect materializes a row sequence.
func Collect(rows iter.Seq2[*Record, error]) ([]*Record, error) {
	var out []*Record

	for rec, err := range rows {
		if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	return out, nil
}

// StartRow returns the row right below the deepest leaf of root.
func StartRow(root *schema.Node) int {
	start := root.Row() + 1
	for _, leaf := range root.Leaves() {
		start = max(start, leaf.Row()+1)
	}

	return start
}
