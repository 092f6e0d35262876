package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"xlmapper/internal/schema"
)

// ErrInvalidDefinition is wrapped by every structural definition error.
var ErrInvalidDefinition = errors.New("invalid definition")

func invalid(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidDefinition, node.Line, fmt.Sprintf(format, args...))
}

// build converts a parsed YAML document into a schema tree.
func build(doc *yaml.Node) (*schema.Node, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
	}

	top := doc.Content[0]
	if top.Kind != yaml.MappingNode || len(top.Content) != 2 {
		return nil, invalid(top, "expected a mapping with exactly one key, the root name")
	}

	return block(top.Content[0], top.Content[1])
}

// block builds the node declared by key and its subtree.
func block(key, value *yaml.Node) (*schema.Node, error) {
	if key.Kind != yaml.ScalarNode {
		return nil, invalid(key, "node name must be a scalar")
	}

	name := key.Value

	var (
		decl     schema.Declaration
		children []*schema.Node
	)

	switch {
	case isNull(value):
	case value.Kind == yaml.MappingNode:
		seen := make(map[string]bool)

		for i := 0; i < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]

			if seen[k.Value] {
				return nil, invalid(k, "duplicate key %q in %q", k.Value, name)
			}

			seen[k.Value] = true

			if field, ok := schema.ParseField(k.Value); ok {
				if err := setField(&decl, field, v); err != nil {
					return nil, err
				}

				continue
			}

			child, err := block(k, v)
			if err != nil {
				return nil, err
			}

			children = append(children, child)
		}
	default:
		return nil, invalid(value, "node %q must be a mapping or ~", name)
	}

	cfg, err := schema.DeclaredConfig(name, decl)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", key.Line, err)
	}

	node := schema.New(cfg)
	for _, child := range children {
		node.AddChild(child)
	}

	return node, nil
}

func setField(decl *schema.Declaration, field schema.Field, v *yaml.Node) error {
	switch field {
	case schema.FieldOffset:
		offset, err := decodeOffset(v)
		if err != nil {
			return err
		}

		decl.Offset = &offset
	case schema.FieldInputLabel:
		s, err := decodeScalar[string](v, field)
		if err != nil {
			return err
		}

		decl.InputLabel = &s
	case schema.FieldOutputKey:
		s, err := decodeScalar[string](v, field)
		if err != nil {
			return err
		}

		if s == "" {
			return invalid(v, "%s must not be empty", field)
		}

		decl.OutputKey = &s
	case schema.FieldOptional:
		b, err := decodeScalar[bool](v, field)
		if err != nil {
			return err
		}

		decl.Optional = &b
	case schema.FieldSkip:
		b, err := decodeScalar[bool](v, field)
		if err != nil {
			return err
		}

		decl.Skip = &b
	}

	return nil
}

func decodeScalar[T any](v *yaml.Node, field schema.Field) (T, error) {
	var out T

	if v.Kind != yaml.ScalarNode || isNull(v) {
		return out, invalid(v, "%s must be a scalar", field)
	}

	if err := v.Decode(&out); err != nil {
		return out, invalid(v, "%s: %v", field, err)
	}

	return out, nil
}

func decodeOffset(v *yaml.Node) (schema.Offset, error) {
	var pair []int

	if v.Kind != yaml.SequenceNode {
		return schema.Offset{}, invalid(v, "offset must be a [row, col] sequence")
	}

	if err := v.Decode(&pair); err != nil {
		return schema.Offset{}, invalid(v, "offset: %v", err)
	}

	if len(pair) != 2 {
		return schema.Offset{}, invalid(v, "offset must have exactly 2 items, got %d", len(pair))
	}

	if pair[0] < 0 || pair[1] < 0 {
		return schema.Offset{}, invalid(v, "offset must not be negative")
	}

	return schema.Offset{Row: pair[0], Col: pair[1]}, nil
}

func isNull(v *yaml.Node) bool {
	return v.Kind == yaml.ScalarNode && v.ShortTag() == "!!null"
}

// encode converts a schema tree into a YAML document. Only explicit
// fields are written.
func encode(root *schema.Node) (*yaml.Node, error) {
	value, err := encodeBlock(root)
	if err != nil {
		return nil, err
	}

	top := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{str(root.Config.RawName), value},
	}

	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{top}}, nil
}

func encodeBlock(n *schema.Node) (*yaml.Node, error) {
	cfg := n.Config

	if cfg.Explicit.Len() == 0 && n.IsLeaf() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}, nil
	}

	block := &yaml.Node{Kind: yaml.MappingNode}

	for _, field := range schema.Fields {
		if !cfg.Explicit.Has(field) {
			continue
		}

		var value *yaml.Node

		switch field {
		case schema.FieldOffset:
			value = &yaml.Node{
				Kind:    yaml.SequenceNode,
				Style:   yaml.FlowStyle,
				Content: []*yaml.Node{integer(cfg.Offset.Row), integer(cfg.Offset.Col)},
			}
		case schema.FieldInputLabel:
			value = str(cfg.InputLabel)
		case schema.FieldOutputKey:
			value = str(cfg.OutputKey)
		case schema.FieldOptional:
			value = boolean(cfg.Optional)
		case schema.FieldSkip:
			value = boolean(cfg.Skip)
		}

		block.Content = append(block.Content, str(field.String()), value)
	}

	rawName := func(c *schema.Node) string { return c.Config.RawName }
	if err := n.UniqueChildren("name", rawName); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	for _, child := range n.Children() {
		if _, reserved := schema.ParseField(child.Config.RawName); reserved {
			return nil, fmt.Errorf("%w: node name %q is a reserved key", ErrInvalidDefinition, child.Config.RawName)
		}

		value, err := encodeBlock(child)
		if err != nil {
			return nil, err
		}

		block.Content = append(block.Content, str(child.Config.RawName), value)
	}

	return block, nil
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func integer(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(i)}
}

func boolean(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(b)}
}
