package schema

import (
	"fmt"

	"xlmapper/internal/match"
)

// DefaultRootName is the root name used when none is given.
const DefaultRootName = "Mapper"

// MalformedLabelError is returned when a label yields no usable tokens.
type MalformedLabelError struct {
	Label string
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("malformed label %q: no usable word or digit tokens", e.Label)
}

// InferConfig builds the config for a raw header label.
// RawName is the CamelCase form of the label and OutputKey its snake_case
// form. InputLabel is marked explicit only when it differs from RawName.
func InferConfig(label string) (FieldConfig, error) {
	rawName := match.ClassName(label)
	if rawName == "" {
		return FieldConfig{}, &MalformedLabelError{Label: label}
	}

	cfg := FieldConfig{
		RawName:    rawName,
		InputLabel: label,
		OutputKey:  match.SnakeCase(rawName),
	}

	if rawName != label {
		cfg.Explicit = cfg.Explicit.With(FieldInputLabel)
	}

	return cfg, nil
}

// Declaration is an explicit node description. Nil fields are derived.
type Declaration struct {
	InputLabel *string
	OutputKey  *string
	Offset     *Offset
	Optional   *bool
	Skip       *bool
}

// DeclaredConfig builds the config of a declared node named name.
// Missing fields are derived from the name (InputLabel = name,
// OutputKey = snake_case(name)); every supplied field is marked explicit.
func DeclaredConfig(name string, decl Declaration) (FieldConfig, error) {
	if name == "" {
		return FieldConfig{}, &MalformedLabelError{Label: name}
	}

	cfg := FieldConfig{
		RawName:    name,
		InputLabel: name,
		OutputKey:  match.SnakeCase(name),
	}

	if decl.InputLabel != nil {
		cfg.InputLabel = *decl.InputLabel
		cfg.Explicit = cfg.Explicit.With(FieldInputLabel)
	}

	if decl.OutputKey != nil {
		cfg.OutputKey = *decl.OutputKey
		cfg.Explicit = cfg.Explicit.With(FieldOutputKey)
	}

	if decl.Offset != nil {
		cfg.SetOffset(*decl.Offset)
	}

	if decl.Optional != nil {
		cfg.Optional = *decl.Optional
		cfg.Explicit = cfg.Explicit.With(FieldOptional)
	}

	if decl.Skip != nil {
		cfg.Skip = *decl.Skip
		cfg.Explicit = cfg.Explicit.With(FieldSkip)
	}

	return cfg, nil
}

// NewRoot returns a root node named name placed at the given header offset.
// The offset is explicit only when it is not (0, 0).
func NewRoot(name string, offset Offset) (*Node, error) {
	if name == "" {
		name = DefaultRootName
	}

	decl := Declaration{}
	if !offset.IsZero() {
		decl.Offset = &offset
	}

	cfg, err := DeclaredConfig(name, decl)
	if err != nil {
		return nil, err
	}

	return New(cfg), nil
}
