// Package render serialises assembled entity documents to YAML.
//
// The output follows the consuming platform's configuration conventions:
// entity names and literals are double-quoted, group addresses stay plain
// integers, absent optional fields are omitted entirely and empty platform
// sections render as empty lists. Field order within an entity follows the
// kind's schema, with the name first.
package render

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/easy2ha/internal/easyproj"
	"github.com/nerrad567/easy2ha/internal/homeassistant"
)

// Marshal serialises a document to YAML.
func Marshal(doc *homeassistant.Document) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, section := range doc.Sections() {
		node, err := sectionNode(section.Entities)
		if err != nil {
			return nil, fmt.Errorf("rendering section %s: %w", section.Key, err)
		}
		root.Content = append(root.Content, plainScalar(section.Key), node)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile serialises a document and writes it to path in one operation.
// The document is rendered fully in memory before the file is touched, so
// an assembly problem never truncates an existing configuration.
func WriteFile(path string, doc *homeassistant.Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}

func sectionNode(entities []*homeassistant.Entity) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	if len(entities) == 0 {
		node.Style = yaml.FlowStyle
		return node, nil
	}

	for _, e := range entities {
		entity, err := entityNode(e)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, entity)
	}
	return node, nil
}

func entityNode(e *homeassistant.Entity) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, plainScalar("name"), quotedScalar(e.Name))

	for _, f := range e.ResolvedFields() {
		value, err := valueNode(f.Value)
		if err != nil {
			return nil, fmt.Errorf("entity %s field %s: %w", e.Name, f.Name, err)
		}
		node.Content = append(node.Content, plainScalar(f.Name), value)
	}
	return node, nil
}

func valueNode(v any) (*yaml.Node, error) {
	switch value := v.(type) {
	case easyproj.GroupAddress:
		return intScalar(value), nil
	case []easyproj.GroupAddress:
		list := &yaml.Node{Kind: yaml.SequenceNode}
		for _, addr := range value {
			list.Content = append(list.Content, intScalar(addr))
		}
		return list, nil
	case string:
		return quotedScalar(value), nil
	default:
		return nil, fmt.Errorf("unsupported field value type %T", v)
	}
}

func plainScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quotedScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}

func intScalar(addr easyproj.GroupAddress) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(int(addr))}
}
