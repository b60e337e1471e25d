package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads YAML mappings. Nested mappings are flattened into dotted names.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

// Parse decodes into a yaml.Node to keep document order, so duplicate names keep
// their first value.
func (p *YAMLParser) Parse(content []byte) (map[string]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	table := make(map[string]string)
	if len(root.Content) == 0 {
		return table, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.Join(ErrFailedToParseYAML, ErrInvalidStructure)
	}
	if err := p.mapping(doc, "", table); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return table, nil
}

func (p *YAMLParser) mapping(node *yaml.Node, prefix string, table map[string]string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		name := joinKey(prefix, key.Value)

		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		switch value.Kind {
		case yaml.MappingNode:
			if err := p.mapping(value, name, table); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if value.Tag == "!!null" {
				continue
			}
			addFirst(table, name, value.Value)
		default:
			return fmt.Errorf("%w: %q at line %d", ErrInvalidStructure, name, value.Line)
		}
	}
	return nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
