package infer

import (
	"errors"
	"fmt"

	"xlmapper/internal/schema"
)

// ErrBranchingChain is returned when a chain node has more than one child.
var ErrBranchingChain = errors.New("label chain must be linear")

// Chain builds a linear breadcrumb from top-to-bottom header labels and
// returns its head. It returns nil for an empty list.
func Chain(labels []string) (*schema.Node, error) {
	var head, tail *schema.Node

	for _, label := range labels {
		cfg, err := schema.InferConfig(label)
		if err != nil {
			return nil, err
		}

		node := schema.New(cfg)
		if tail == nil {
			head = node
		} else {
			tail.AddChild(node)
		}

		tail = node
	}

	return head, nil
}

// Merge folds a linear chain into the children of receiver.
//
// The chain head is compared with the last child of receiver (identity
// only, offsets ignored). On a match the merge continues one level down
// with the head's child; a chain that ends on a matching node is fully
// absorbed and reported with carry 1. On a mismatch, or when receiver has
// no children, the chain is appended as a new subtree and returned as the
// divergent node with carry 0.
//
// A non-root leaf receiver already maps its own column, so a chain
// continuing below it starts one column to the right of that leaf.
func Merge(receiver, chain *schema.Node) (divergent *schema.Node, carry int) {
	children := receiver.Children()
	if len(children) == 0 || !children[len(children)-1].Config.Equal(chain.Config) {
		holdsColumn := !receiver.IsRoot() && receiver.IsLeaf()
		receiver.AddChild(chain)

		if holdsColumn {
			offset := chain.Config.Offset
			offset.Col++
			chain.SetOffset(offset)
		}

		return chain, 0
	}

	if chain.IsLeaf() {
		return nil, 1
	}

	return Merge(children[len(children)-1], chain.Children()[0])
}

// checkLinear verifies that no node of the chain has more than one child.
func checkLinear(chain *schema.Node) error {
	for node := range chain.Walk() {
		if len(node.Children()) > 1 {
			return fmt.Errorf("%w: %q has %d children", ErrBranchingChain, node.Config.RawName, len(node.Children()))
		}
	}

	return nil
}
