package sample

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML document into a Value tree. yaml.Node keeps
// mapping entries in document order, so no special handling is needed to
// preserve field order.
func DecodeYAML(data []byte) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding sample YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Null(), nil
	}
	v, err := fromYAMLNode(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("decoding sample YAML: %w", err)
	}
	return v, nil
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			child, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: key.Value, Value: child})
		}
		return Object(fields...), nil

	case yaml.SequenceNode:
		items := make([]*Value, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return Array(items...), nil

	case yaml.ScalarNode:
		return fromYAMLScalar(n)

	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (*Value, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("bool scalar %q at line %d: %w", n.Value, n.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("numeric scalar %q at line %d: %w", n.Value, n.Line, err)
		}
		return Number(f), nil
	default:
		// Timestamps and any custom-tagged scalars are carried as
		// strings; the engine's temporal detection handles date-times.
		return String(n.Value), nil
	}
}
