// Package mapping reads and writes declarative definition files.
//
// A definition describes a schema tree explicitly instead of inferring it
// from a header. It is a YAML document with a single top-level key, the
// root name. Inside every block the reserved keys set fields of the node
// and every other key declares a child, in order:
//
//	Mapper:
//	  offset: [2, 0]
//	  Parent:
//	    ChildOne:
//	      input_label: Child one
//	    ChildTwo: ~
//	  Notes:
//	    optional: true
//
// Reserved keys:
//
//   - offset: [row, col] added to the computed position
//   - input_label: header text expected in the worksheet
//   - output_key: key used in extracted records
//   - optional: drop the node when its header is missing
//   - skip: do not check the header and do not extract the column
//
// Fields that are not set are derived from the node name. Blocks without
// fields or children are written as ~.
package mapping
