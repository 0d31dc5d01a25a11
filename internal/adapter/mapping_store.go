package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "recase.dev/pkg/recase/internal/model"
)

// MappingStore loads and saves rename mappings. Files are a single YAML or
// JSON object whose keys are old spellings and whose values are new ones.
type MappingStore interface {
	Load(ctx context.Context, path m.Path) (m.Mapping, error)
	Save(ctx context.Context, path m.Path, mapping m.Mapping) error
}

// FileMappingStore is the disk-backed MappingStore.
type FileMappingStore struct{}

// NewFileMappingStore creates a FileMappingStore.
func NewFileMappingStore() *FileMappingStore {
	return &FileMappingStore{}
}

// Load reads path and decodes it with ParseMapping.
func (s *FileMappingStore) Load(ctx context.Context, path m.Path) (m.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	mapping, err := ParseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}

	return mapping, nil
}

// Save writes mapping to path, as YAML for .yaml/.yml files and JSON otherwise.
func (s *FileMappingStore) Save(ctx context.Context, path m.Path, mapping m.Mapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		data, err = encodeMappingYAML(mapping)
	default:
		data, err = encodeMappingJSON(mapping)
	}

	if err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	return os.WriteFile(string(path), data, 0o600)
}

// ParseMapping decodes an ordered mapping. Entry order follows the document,
// duplicate keys are rejected and the result is validated.
func ParseMapping(data []byte) (m.Mapping, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrInvalidMapping, err)
	}

	if doc.Kind == 0 {
		return m.Mapping{}, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected an object of old to new spellings", m.ErrInvalidMapping, root.Line)
	}

	mapping := make(m.Mapping, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: entries must be string pairs", m.ErrInvalidMapping, key.Line)
		}

		if line, ok := seen[key.Value]; ok {
			return nil, fmt.Errorf("%w: %q on lines %d and %d", m.ErrDuplicateKey, key.Value, line, key.Line)
		}

		seen[key.Value] = key.Line
		mapping = append(mapping, m.Rename{Old: key.Value, New: value.Value})
	}

	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	return mapping, nil
}

func encodeMappingYAML(mapping m.Mapping) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, r := range mapping {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: r.Old},
			&yaml.Node{Kind: yaml.ScalarNode, Value: r.New},
		)
	}

	return yaml.Marshal(node)
}

func encodeMappingJSON(mapping m.Mapping) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("{")

	for i, r := range mapping {
		if i > 0 {
			buf.WriteString(",")
		}

		key, err := json.Marshal(r.Old)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(r.New)
		if err != nil {
			return nil, err
		}

		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}

	if len(mapping) > 0 {
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")

	return buf.Bytes(), nil
}
