package infer

import (
	"fmt"

	"go.uber.org/zap"

	"xlmapper/internal/grid"
	"xlmapper/internal/header"
	"xlmapper/internal/schema"
)

// Options configures header inference.
type Options struct {
	// Header selects the header block.
	Header header.Options
	// Name is the root name, schema.DefaultRootName when empty.
	Name string
	// Logger receives per-column debug events. Nil disables logging.
	Logger *zap.Logger
}

// Merger folds label chains into a tree and keeps the carry accumulator.
type Merger struct {
	root   *schema.Node
	carry  int
	logger *zap.Logger
}

// NewMerger returns a merger that grows root.
func NewMerger(root *schema.Node, logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Merger{root: root, logger: logger}
}

// Root returns the tree being built.
func (m *Merger) Root() *schema.Node {
	return m.root
}

// Carry returns the number of columns absorbed since the last divergence.
func (m *Merger) Carry() int {
	return m.carry
}

// Add folds the chain of the next column. A nil chain stands for a column
// without any label and counts as one carry unit.
func (m *Merger) Add(chain *schema.Node) error {
	if chain == nil {
		m.carry++
		m.logger.Debug("blank header column", zap.Int("carry", m.carry))

		return nil
	}

	if err := checkLinear(chain); err != nil {
		return err
	}

	divergent, carry := Merge(m.root, chain)
	if carry > 0 {
		m.carry += carry
		m.logger.Debug("header column absorbed",
			zap.String("chain", chain.Config.RawName),
			zap.Int("carry", m.carry))

		return nil
	}

	if divergent != nil && m.carry > 0 {
		offset := divergent.Config.Offset
		offset.Col += m.carry
		divergent.SetOffset(offset)

		m.logger.Debug("carry applied",
			zap.String("node", divergent.QualifiedName()),
			zap.Int("offset", offset.Col),
			zap.String("coordinate", divergent.Coordinate()))

		m.carry = 0
	}

	return nil
}

// Infer reads the header of g and returns the inferred tree.
func Infer(g grid.Grid, opts Options) (*schema.Node, error) {
	reader, err := header.NewReader(g, opts.Header)
	if err != nil {
		return nil, err
	}

	root, err := schema.NewRoot(opts.Name, opts.Header.Offset)
	if err != nil {
		return nil, err
	}

	m := NewMerger(root, opts.Logger)
	col := opts.Header.Offset.Col

	for labels, err := range reader.Columns() {
		if err != nil {
			return nil, err
		}

		col++

		chain, err := Chain(labels)
		if err != nil {
			return nil, fmt.Errorf("header column %s: %w", grid.ColumnName(col), err)
		}

		if err := m.Add(chain); err != nil {
			return nil, fmt.Errorf("header column %s: %w", grid.ColumnName(col), err)
		}
	}

	m.logger.Debug("header inferred",
		zap.Int("columns", col-opts.Header.Offset.Col),
		zap.Int("nodes", root.Cardinality()),
		zap.Int("leaves", len(root.Leaves())))

	return root, nil
}
