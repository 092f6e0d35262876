package gen

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"xlmapper/internal/match"
	"xlmapper/internal/schema"
)

const tsPreamble = "// WARNING! THIS IS GENERATED CODE! DON'T EDIT!\n"

var tsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var typeTemplate = template.Must(template.New("type").Parse(`export type {{.Name}} = {
{{- range .Fields}}
{{- if .Doc}}
  /** {{.Doc}} */
{{- end}}
  {{.Key}}: {{.Type}};
{{- end}}
}
`))

type typeBlock struct {
	Name   string
	Fields []typeField
}

type typeField struct {
	Doc  string
	Key  string
	Type string
}

// TypeScript renders one exported type alias per non-leaf node. Leaves are
// typed string; nested fields reference the alias of their child. Types are
// emitted so that every alias is defined before it is referenced.
func TypeScript(root *schema.Node) (string, error) {
	var nodes []*schema.Node

	for n := range root.Walk() {
		if !n.IsLeaf() {
			nodes = append(nodes, n)
		}
	}

	aliases, err := assignAliases(nodes)
	if err != nil {
		return "", err
	}

	// Leaf-to-root: a reversed preorder lists every child before its parent.
	slices.Reverse(nodes)

	nodes, err = topoSort(nodes, func(n *schema.Node) []*schema.Node {
		var deps []*schema.Node

		for _, child := range n.Children() {
			if !child.IsLeaf() {
				deps = append(deps, child)
			}
		}

		return deps
	})
	if err != nil {
		return "", err
	}

	blocks := []string{tsPreamble}

	for _, n := range nodes {
		block, err := renderType(n, aliases)
		if err != nil {
			return "", err
		}

		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n"), nil
}

// assignAliases gives every node a distinct type name, in preorder.
// The default name derives from the raw name. A name already taken by an
// earlier node is prefixed with the alias of the node's parent, or with
// "Root" for children of the root. A qualified name that is still taken
// gets a numeric suffix.
func assignAliases(nodes []*schema.Node) (map[*schema.Node]string, error) {
	aliases := make(map[*schema.Node]string, len(nodes))
	used := make(map[string]bool, len(nodes))

	for _, n := range nodes {
		name := match.ClassName(n.Config.RawName)
		if name == "" {
			return nil, &schema.MalformedLabelError{Label: n.Config.RawName}
		}

		if used[name] {
			prefix := "Root"
			if p := n.Parent(); p != nil && !p.IsRoot() {
				prefix = aliases[p]
			}

			name = prefix + name
		}

		if used[name] {
			base := name
			for i := 2; used[name]; i++ {
				name = base + strconv.Itoa(i)
			}
		}

		aliases[n] = name
		used[name] = true
	}

	return aliases, nil
}

func renderType(n *schema.Node, aliases map[*schema.Node]string) (string, error) {
	outputKey := func(c *schema.Node) string { return c.Config.OutputKey }
	if err := n.UniqueChildren("output key", outputKey); err != nil {
		return "", err
	}

	block := typeBlock{Name: aliases[n]}

	for _, child := range n.Children() {
		field := typeField{Key: tsKey(child.Config.OutputKey), Type: "string"}

		if !child.IsLeaf() {
			field.Type = aliases[child]
		}

		if child.Config.Explicit.Has(schema.FieldInputLabel) {
			field.Doc = strings.ReplaceAll(child.Config.InputLabel, "*/", "* /")
		}

		block.Fields = append(block.Fields, field)
	}

	var b strings.Builder
	if err := typeTemplate.Execute(&b, block); err != nil {
		return "", fmt.Errorf("rendering type %s: %w", block.Name, err)
	}

	return b.String(), nil
}

func tsKey(key string) string {
	if tsIdentifier.MatchString(key) {
		return key
	}

	return strconv.Quote(key)
}
