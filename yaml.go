package jsobj

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/marksantaniello/jsobj/eval"
	"github.com/marksantaniello/jsobj/ir"
)

// ToYAML renders node as YAML. Dictionary order is preserved.
func ToYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(yamlValue(node))
}

func yamlValue(node *ir.Node) any {
	switch node.Type {
	case ir.DictType:
		res := make(yaml.MapSlice, 0, node.Len())
		for i, field := range node.Fields {
			res = append(res, yaml.MapItem{Key: field, Value: yamlValue(node.Values[i])})
		}
		return res
	case ir.ArrayType:
		res := make([]any, 0, node.Len())
		for _, elt := range node.Values {
			res = append(res, yamlValue(elt))
		}
		return res
	default:
		return eval.ToAny(node)
	}
}

// FromYAML parses YAML into a value tree. Mapping order is preserved.
// Mapping keys must be strings.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLValue(v)
}

func fromYAMLValue(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		res := ir.NewDict()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", item.Key)
			}
			val, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		res := ir.NewArray()
		for _, elt := range t {
			v, err := fromYAMLValue(elt)
			if err != nil {
				return nil, err
			}
			res.Append(v)
		}
		return res, nil
	default:
		return eval.FromAny(v)
	}
}
