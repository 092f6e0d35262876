// Package gen renders schema trees as text.
//
// Formatters are pure: they only read the tree and never touch a grid.
//
//   - pretty: indented debug tree, one node per line
//   - flat: "A2 -> parent.child" per leaf, left to right
//   - yaml: declarative definition file (see package mapping)
//   - ts: TypeScript type aliases, one per non-leaf node
//
// All output is UTF-8 and newline-terminated.
package gen
