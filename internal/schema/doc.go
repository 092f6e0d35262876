// Package schema holds the field tree that binds a spreadsheet header to
// row/column coordinates.
//
// A tree is made of Nodes. Each node carries a FieldConfig (its identifier,
// header label, output key and a declared offset) and owns its ordered
// children; the parent link is a plain back-reference. Absolute positions
// are derived from the tree shape:
//
//   - the root sits at (offset.Row, offset.Col+1)
//   - a node's row is its parent's row + offset.Row + 1
//   - a first child starts at its parent's column (+ offset.Col)
//   - a later child starts one column right of the rightmost descendant of
//     its left sibling (+ offset.Col)
//
// Positions are memoized and invalidated explicitly by every structural
// mutation (AddChild, Detach).
//
// Configs are produced either from a raw header label (InferConfig) or from
// an explicit declaration (DeclaredConfig).
package schema
