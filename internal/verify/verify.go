package verify

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"xlmapper/internal/diagnostic"
	"xlmapper/internal/grid"
	"xlmapper/internal/match"
	"xlmapper/internal/schema"
)

// TypoSimilarity is the label similarity from which a mismatch is reported
// as a probable typo.
const TypoSimilarity = 0.75

// SchemaMismatchError is returned when a header cell does not read the
// label a node expects and the mismatch cannot be tolerated.
type SchemaMismatchError struct {
	QualifiedName string
	Coordinate    string
	Expected      string
	Actual        string
	// Similarity is the normalized Levenshtein score of both labels.
	Similarity float64
}

func (e *SchemaMismatchError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "header does not match the schema: node %q at %s expected %q, found %q",
		e.QualifiedName, e.Coordinate, e.Expected, e.Actual)

	if e.Similarity >= TypoSimilarity {
		fmt.Fprintf(&b, " (probable typo, similarity %.2f)", e.Similarity)
	}

	b.WriteString("; fix the label or mark the node optional or skip")

	return b.String()
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used for debug events.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Verifier checks schema trees against one grid.
type Verifier struct {
	grid   grid.Grid
	logger *zap.Logger
}

// New returns a verifier reading header cells from g.
func New(g grid.Grid, opts ...Option) *Verifier {
	v := &Verifier{grid: g, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Verify checks root against the grid and returns the reconciled tree.
//
// The input tree is never modified: reconciliation happens on a clone, so
// a fatal mismatch leaves the caller with its original tree and no partial
// result. Detaching a node invalidates the memoized positions of the whole
// clone; nodes visited afterwards recompute theirs lazily.
func (v *Verifier) Verify(root *schema.Node) (*schema.Node, *diagnostic.Diagnostics, error) {
	tree := root.Clone()
	diags := &diagnostic.Diagnostics{}

	// Detaching reshapes children slices, so walk a snapshot.
	nodes := slices.Collect(tree.Walk())

	for _, node := range nodes {
		if node == tree || node.Root() != tree {
			continue
		}

		if node.Skipped() {
			if node.Config.Skip {
				diags.AddInfo(diagnostic.CodeSkipped, node, "header not checked")
			}

			continue
		}

		if err := v.check(node, diags); err != nil {
			return nil, nil, err
		}
	}

	v.logger.Debug("header verified",
		zap.Int("nodes", tree.Cardinality()),
		zap.Int("warnings", len(diags.Warnings)))

	return tree, diags, nil
}

func (v *Verifier) check(node *schema.Node, diags *diagnostic.Diagnostics) error {
	pos := node.Position()

	cell, err := v.grid.Cell(pos.Row, pos.Col)
	if err != nil {
		return fmt.Errorf("verifying %q: %w", node.QualifiedName(), err)
	}

	expected := node.Config.InputLabel
	actual := cell.Text()

	if actual == expected {
		return nil
	}

	coordinate := node.Coordinate()
	name := node.QualifiedName()

	if node.Config.Optional {
		// Located before detaching; the name depends on the parent.
		diags.AddWarning(diagnostic.CodeOptionalDetached, node,
			"optional node removed: expected %q, found %q", expected, actual)
		node.Detach()

		v.logger.Debug("optional node detached",
			zap.String("node", name),
			zap.String("coordinate", coordinate))

		return nil
	}

	if cell.IsBlank() {
		diags.AddWarning(diagnostic.CodeBlankTolerated, node,
			"blank header cell accepted for %q", expected)
		v.logger.Debug("blank header tolerated",
			zap.String("node", name),
			zap.String("coordinate", coordinate))

		return nil
	}

	return &SchemaMismatchError{
		QualifiedName: name,
		Coordinate:    coordinate,
		Expected:      expected,
		Actual:        actual,
		Similarity:    match.LabelSimilarity(expected, actual),
	}
}
