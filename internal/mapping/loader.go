package mapping

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"xlmapper/internal/schema"
)

// LoadFile loads and parses a definition file from the given path.
func LoadFile(path string) (*schema.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

// Parse parses YAML definition data into a schema tree.
func Parse(data []byte) (*schema.Node, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	return build(&doc)
}

// Marshal serializes a schema tree to definition YAML.
func Marshal(root *schema.Node) ([]byte, error) {
	doc, err := encode(root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes the definition of root to the given path, creating
// parent directories as needed.
func WriteFile(root *schema.Node, path string) error {
	data, err := Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write definition file %s: %w", path, err)
	}

	return nil
}
