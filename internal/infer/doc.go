// Package infer builds a schema tree from a spreadsheet header.
//
// Every header column yields a label chain: the labels found from the top
// header row down to the bottom one. Chains are folded into one tree, left
// to right, so that columns sharing a label prefix share ancestors:
//
//	| Parent              | Other |
//	| ChildOne | ChildTwo |       |
//
// becomes
//
//	Mapper
//	  Parent (A1)
//	    ChildOne (A2)
//	    ChildTwo (B2)
//	  Other (C1)
//
// Columns that add nothing new (a chain fully absorbed by the existing
// tree, or a column without any label) are counted as carry. The carry is
// stored as the column offset of the next node that diverges from the tree,
// which keeps the physical column gap in the computed positions.
package infer
