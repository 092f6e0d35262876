package gen

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"xlmapper/internal/mapping"
	"xlmapper/internal/schema"
)

// Formatter renders a schema tree as text.
type Formatter interface {
	Format(root *schema.Node) (string, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(root *schema.Node) (string, error)

// Format implements Formatter.
func (f FormatterFunc) Format(root *schema.Node) (string, error) {
	return f(root)
}

// Output format names.
const (
	FormatPretty     = "pretty"
	FormatFlat       = "flat"
	FormatDefinition = "yaml"
	FormatTypeScript = "ts"
)

var formatters = map[string]Formatter{
	FormatPretty:     FormatterFunc(Pretty),
	FormatFlat:       FormatterFunc(Flat),
	FormatDefinition: FormatterFunc(Definition),
	FormatTypeScript: FormatterFunc(TypeScript),
}

// Lookup returns the formatter registered under name.
func Lookup(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	return f, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(formatters))
}

// Pretty renders one line per node in preorder, indented by two spaces per
// depth level. A node with a non-zero offset gets an annotation line.
func Pretty(root *schema.Node) (string, error) {
	var b strings.Builder

	prettyNode(&b, root, 0)

	return b.String(), nil
}

func prettyNode(b *strings.Builder, n *schema.Node, depth int) {
	padding := strings.Repeat("  ", depth)

	b.WriteString(padding)
	b.WriteString(n.String())
	b.WriteByte('\n')

	if !n.Config.Offset.IsZero() {
		fmt.Fprintf(b, "%s  ++ offset=%s\n", padding, n.Config.Offset)
	}

	for _, child := range n.Children() {
		prettyNode(b, child, depth+1)
	}
}

// Flat renders "coordinate -> qualified.name" for every leaf, left to right.
func Flat(root *schema.Node) (string, error) {
	var b strings.Builder

	for _, leaf := range root.Leaves() {
		fmt.Fprintf(&b, "%s -> %s\n", leaf.Coordinate(), leaf.QualifiedName())
	}

	return b.String(), nil
}

// Definition renders the declarative definition file of the tree.
func Definition(root *schema.Node) (string, error) {
	data, err := mapping.Marshal(root)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
