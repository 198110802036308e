package params

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// UnmarshalYAML decodes a mapping node, keeping key order. Sequences become
// lists, booleans become switches and any other scalar a one-item list.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of options", node.Line)
	}
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		v, err := decodeValue(val)
		if err != nil {
			return fmt.Errorf("option %q: %w", key.Value, err)
		}
		p.Set(key.Value, v)
	}
	return nil
}

func decodeValue(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: list items must be scalars", item.Line)
			}
			items = append(items, item.Value)
		}
		return List(items...), nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return Value{}, err
			}
			return Flag(b), nil
		case "!!null":
			return List(), nil
		}
		return List(node.Value), nil
	case yaml.AliasNode:
		return decodeValue(node.Alias)
	}
	return Value{}, fmt.Errorf("line %d: unsupported value", node.Line)
}

// MarshalYAML encodes p as an ordered mapping.
func (p *Params) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range p.All() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		var valNode *yaml.Node
		if v.IsFlag() {
			valNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.String()}
		} else {
			valNode = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
			for _, item := range v.items {
				valNode.Content = append(valNode.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item})
			}
		}
		out.Content = append(out.Content, keyNode, valNode)
	}
	return out, nil
}

// MarshalJSON encodes p as an object, keeping key order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range p.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v.Interface())
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
