package schema

import (
	"fmt"
	"strings"
)

// Offset is a (row, column) displacement relative to the position implied
// by the tree structure.
type Offset struct {
	Row int
	Col int
}

// IsZero reports whether the offset is (0, 0).
func (o Offset) IsZero() bool {
	return o.Row == 0 && o.Col == 0
}

// String returns "(row, col)".
func (o Offset) String() string {
	return fmt.Sprintf("(%d, %d)", o.Row, o.Col)
}

// Field names one overridable FieldConfig attribute.
type Field uint8

const (
	FieldOffset Field = 1 << iota
	FieldInputLabel
	FieldOutputKey
	FieldOptional
	FieldSkip
)

// Fields lists the overridable attributes in their canonical order.
var Fields = []Field{FieldOffset, FieldInputLabel, FieldOutputKey, FieldOptional, FieldSkip}

// String returns the attribute name as used in definition files.
func (f Field) String() string {
	switch f {
	case FieldOffset:
		return "offset"
	case FieldInputLabel:
		return "input_label"
	case FieldOutputKey:
		return "output_key"
	case FieldOptional:
		return "optional"
	case FieldSkip:
		return "skip"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}

// ParseField returns the attribute with the given definition-file name.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if f.String() == name {
			return f, true
		}
	}

	return 0, false
}

// FieldSet records which attributes were provided explicitly rather than
// derived.
type FieldSet uint8

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	return s&FieldSet(f) != 0
}

// With returns the set with f added.
func (s FieldSet) With(f Field) FieldSet {
	return s | FieldSet(f)
}

// Without returns the set with f removed.
func (s FieldSet) Without(f Field) FieldSet {
	return s &^ FieldSet(f)
}

// Len returns the number of attributes in the set.
func (s FieldSet) Len() int {
	n := 0

	for _, f := range Fields {
		if s.Has(f) {
			n++
		}
	}

	return n
}

// String returns the comma separated attribute names.
func (s FieldSet) String() string {
	var names []string

	for _, f := range Fields {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}

	return "{" + strings.Join(names, ", ") + "}"
}

// FieldConfig describes one node's identity and naming.
type FieldConfig struct {
	// RawName is the identifier used for generated type and block names.
	RawName string
	// Offset is the declared displacement, (0, 0) by default.
	Offset Offset
	// InputLabel is the literal header text this node must match.
	InputLabel string
	// OutputKey is the record property name.
	OutputKey string
	// Optional nodes are dropped by verification when their header is absent.
	Optional bool
	// Skip nodes are neither verified nor extracted.
	Skip bool
	// Explicit lists the attributes that were provided rather than derived.
	Explicit FieldSet
}

// Equal compares the identity of two configs: RawName, InputLabel and
// OutputKey. Offsets and flags are ignored.
func (c FieldConfig) Equal(other FieldConfig) bool {
	return c.RawName == other.RawName &&
		c.InputLabel == other.InputLabel &&
		c.OutputKey == other.OutputKey
}

// SetOffset sets the declared offset and marks it explicit.
func (c *FieldConfig) SetOffset(o Offset) {
	c.Offset = o
	c.Explicit = c.Explicit.With(FieldOffset)
}

// String returns "RawName(label -> key)".
func (c FieldConfig) String() string {
	return fmt.Sprintf("%s(%s -> %s)", c.RawName, c.InputLabel, c.OutputKey)
}
