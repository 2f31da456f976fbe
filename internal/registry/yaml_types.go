package registry

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"typeflow/internal/common"
	"typeflow/internal/match"
)

var constructors = []string{"array", "tuple", "object", "function", "union", "intersection", "ref"}

// --- Table YAML methods ---

// UnmarshalYAML reads a mapping, keeping its key order.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*t = nil
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of names to types", node.Line)
	}

	entries := make(Table, 0, len(node.Content)/2)
	seen := make(map[string]int, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if first, dup := seen[key.Value]; dup {
			return fmt.Errorf("line %d: %q already declared on line %d", key.Line, key.Value, first)
		}

		seen[key.Value] = key.Line

		var te *TypeExpr
		if err := value.Decode(&te); err != nil {
			return fmt.Errorf("%s: %w", key.Value, err)
		}

		entries = append(entries, Entry{Name: key.Value, Type: te, Line: key.Line})
	}

	*t = entries

	return nil
}

// MarshalYAML writes the entries as a mapping in order.
func (t Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range t {
		var value yaml.Node
		if err := value.Encode(e.Type); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
			&value,
		)
	}

	return node, nil
}

// --- TypeExpr YAML methods ---

// UnmarshalYAML accepts a scalar type name or a single-key constructor mapping.
func (te *TypeExpr) UnmarshalYAML(node *yaml.Node) error {
	te.line = node.Line

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			return fmt.Errorf("line %d: empty type expression", node.Line)
		}

		te.Name = node.Value

		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: type expression must have exactly one key, got %d",
				node.Line, len(node.Content)/2)
		}

		return te.decodeConstructor(node.Content[0], node.Content[1])

	default:
		return fmt.Errorf("line %d: expected a type name or a mapping", node.Line)
	}
}

func (te *TypeExpr) decodeConstructor(key, value *yaml.Node) error {
	switch key.Value {
	case "array":
		te.Array = &TypeExpr{}
		return value.Decode(te.Array)
	case "tuple":
		te.Tuple = &TupleExpr{}
		return value.Decode(te.Tuple)
	case "object":
		te.Object = &ObjectExpr{}
		return value.Decode(te.Object)
	case "function":
		te.Function = &FunctionExpr{}
		return value.Decode(te.Function)
	case "union":
		return te.decodeVariants(value, &te.Union)
	case "intersection":
		return te.decodeVariants(value, &te.Intersection)
	case "ref":
		return value.Decode(&te.Ref)
	default:
		msg := fmt.Sprintf("line %d: unknown type constructor %q", key.Line, key.Value)
		if s, ok := common.First(match.Suggest(key.Value, constructors, match.DefaultMinScore, 1)); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}

		return errors.New(msg)
	}
}

func (te *TypeExpr) decodeVariants(value *yaml.Node, dst *[]*TypeExpr) error {
	var variants []*TypeExpr
	if err := value.Decode(&variants); err != nil {
		return err
	}

	if variants == nil {
		variants = []*TypeExpr{}
	}

	*dst = variants

	return nil
}

// MarshalYAML writes the expression back in the form it is read.
func (te *TypeExpr) MarshalYAML() (any, error) {
	switch {
	case te == nil:
		return nil, nil
	case te.Name != "":
		return te.Name, nil
	case te.Array != nil:
		return map[string]any{"array": te.Array}, nil
	case te.Tuple != nil:
		return map[string]any{"tuple": te.Tuple}, nil
	case te.Object != nil:
		return map[string]any{"object": te.Object}, nil
	case te.Function != nil:
		return map[string]any{"function": te.Function}, nil
	case te.Union != nil:
		return map[string]any{"union": te.Union}, nil
	case te.Intersection != nil:
		return map[string]any{"intersection": te.Intersection}, nil
	case te.Ref != "":
		return map[string]any{"ref": te.Ref}, nil
	default:
		return nil, errors.New("empty type expression")
	}
}

// String renders the expression as YAML.
func (te *TypeExpr) String() string {
	data, err := yaml.Marshal(te)
	if err != nil {
		return "<invalid>"
	}

	return strings.TrimSpace(string(data))
}
