// Package grid provides read-only, 1-indexed random access to the cells of
// one worksheet.
//
// Two implementations are available:
//   - Memory: a rectangular in-memory grid, mostly used by tests and tools
//   - Sheet: an xlsx worksheet opened through excelize
//
// Both resolve merged regions transparently: every cell of a merged range
// reads as the value of the range's top-left anchor cell.
package grid
