// Package verify reconciles a schema tree with the header of a live
// worksheet before rows are mapped.
//
// The tree is walked in preorder. Each node's header cell must read the
// node's input label. A mismatch on an optional node removes that node and
// its subtree; a blank cell where a label was expected is tolerated (the
// slot is assumed to be merged away). Any other mismatch aborts with a
// *SchemaMismatchError.
//
// The blank-cell tolerance can accept a worksheet that is structurally
// different from the tree. It is kept on purpose and reported as a warning.
package verify
