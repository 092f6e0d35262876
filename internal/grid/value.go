package grid

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a resolved cell value.
type Kind int

const (
	KindBlank Kind = iota
	KindString
	KindNumber
)

// Value is a single resolved cell value.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
}

// Blank is the value of an empty cell.
var Blank = Value{}

// String returns a textual cell value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Number returns a numeric cell value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// Of converts a plain Go value into a cell value.
// nil is blank, strings are text, integers and floats are numbers.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Blank, nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case int:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case float32:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	default:
		return Blank, fmt.Errorf("unsupported cell value type %T", v)
	}
}

// Text returns the normalized text of the value: line breaks become spaces,
// surrounding whitespace is trimmed and numbers use their shortest decimal
// form. Blank values yield an empty string.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		s := strings.ReplaceAll(v.Str, "\r\n", " ")
		s = strings.ReplaceAll(s, "\n", " ")

		return strings.TrimSpace(s)
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// IsBlank reports whether the value has no text after normalization.
// Whitespace-only strings count as blank.
func (v Value) IsBlank() bool {
	return v.Text() == ""
}
