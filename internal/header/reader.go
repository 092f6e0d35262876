// Package header reads the label chains of a multi-row spreadsheet header,
// one column at a time.
package header

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"xlmapper/internal/grid"
	"xlmapper/internal/schema"
)

// AutoWidth makes the reader stop at the first column without any label.
const AutoWidth = 0

// Options controls which cells form the header block.
type Options struct {
	// Height is the number of header rows.
	Height int
	// Width is the number of columns to read, or AutoWidth.
	Width int
	// Offset is the number of rows and columns skipped before the header.
	Offset schema.Offset
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Height < 1 {
		return fmt.Errorf("header height must be at least 1, got %d", o.Height)
	}

	if o.Width < 0 {
		return fmt.Errorf("header width must be positive or auto, got %d", o.Width)
	}

	if o.Offset.Row < 0 || o.Offset.Col < 0 {
		return fmt.Errorf("header offset must not be negative, got %s", o.Offset)
	}

	return nil
}

// ParseWidth parses "auto" (or an empty string) and positive integers.
func ParseWidth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return AutoWidth, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q: expected a number or \"auto\"", s)
	}

	if n < 1 {
		return 0, fmt.Errorf("invalid width %d: must be at least 1", n)
	}

	return n, nil
}

// Reader produces the label chain of each header column, left to right.
type Reader struct {
	grid grid.Grid
	opts Options

	col  int
	done bool
}

// NewReader returns a reader over g.
func NewReader(g grid.Grid, opts Options) (*Reader, error) {
	if g == nil {
		return nil, errors.New("grid is nil")
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Reader{grid: g, opts: opts}, nil
}

// Columns returns the per-column label lists. The sequence is single-use:
// ranging over it again resumes after the last yielded column, and nothing
// is produced once the end of the header was reached.
// With an explicit width exactly that many lists are produced (empty ones
// included). In auto mode the first empty column ends the header and is
// not yielded. A grid error is yielded once and ends the sequence.
func (r *Reader) Columns() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for !r.done {
			if r.opts.Width != AutoWidth && r.col >= r.opts.Width {
				r.done = true
				return
			}

			labels, err := r.read(r.col + 1)
			if err != nil {
				r.done = true
				yield(nil, err)

				return
			}

			r.col++

			if len(labels) == 0 && r.opts.Width == AutoWidth {
				r.done = true
				return
			}

			if !yield(labels, nil) {
				return
			}
		}
	}
}

// read collects the normalized, collapsed labels of one header column.
func (r *Reader) read(col int) ([]string, error) {
	var labels []string

	for level := 1; level <= r.opts.Height; level++ {
		v, err := r.grid.Cell(level+r.opts.Offset.Row, col+r.opts.Offset.Col)
		if err != nil {
			return nil, fmt.Errorf("reading header column %d level %d: %w", col, level, err)
		}

		if v.IsBlank() {
			continue
		}

		labels = append(labels, v.Text())
	}

	return Collapse(labels), nil
}

// Collapse removes consecutive duplicate labels. A vertically merged header
// cell reads identically on every row it spans; only the first is kept.
func Collapse(labels []string) []string {
	var collapsed []string

	for _, label := range labels {
		if n := len(collapsed); n > 0 && collapsed[n-1] == label {
			continue
		}

		collapsed = append(collapsed, label)
	}

	return collapsed
}
