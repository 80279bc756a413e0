package configuration

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ConfigurationEntry is one keyed configuration value of a customer option.
// A nil Value models a null or missing "value" field.
type ConfigurationEntry struct {
	Key   string
	Value *float64
}

// ConfigurationSet is an ordered set of configuration entries.
// Order is insertion order; keys are unique.
type ConfigurationSet []ConfigurationEntry

// Range is an explicit minimum/maximum pair. A nil bound is absent.
type Range struct {
	MinKey  string
	MaxKey  string
	Minimum *float64
	Maximum *float64
}

// entryValue is the YAML shape of a single entry: {value: <number|null>}
type entryValue struct {
	Value *float64 `yaml:"value"`
}

// Keys returns the entry keys in set order.
func (s ConfigurationSet) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

// UnmarshalYAML decodes a mapping of key: {value: n} preserving document order.
// Merge keys (<<) are expanded in place; explicit keys override merged ones
// and earlier merge sources override later ones.
func (s *ConfigurationSet) UnmarshalYAML(node *yaml.Node) error {
	set, err := decodeEntries(node, map[*yaml.Node]bool{})
	if err != nil {
		return err
	}
	*s = set
	return nil
}

func decodeEntries(node *yaml.Node, visiting map[*yaml.Node]bool) (ConfigurationSet, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: configuration must be a mapping", node.Line)
	}
	if visiting[node] {
		return nil, fmt.Errorf("line %d: configuration merges itself", node.Line)
	}
	visiting[node] = true
	defer delete(visiting, node)

	explicit := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		if isMergeKey(keyNode) {
			continue
		}
		if explicit[keyNode.Value] {
			return nil, fmt.Errorf("line %d: duplicate configuration key '%s'", keyNode.Line, keyNode.Value)
		}
		explicit[keyNode.Value] = true
	}

	set := make(ConfigurationSet, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		if isMergeKey(keyNode) {
			merged, err := decodeMerge(valNode, visiting)
			if err != nil {
				return nil, err
			}
			for _, e := range merged {
				if explicit[e.Key] || seen[e.Key] {
					continue
				}
				seen[e.Key] = true
				set = append(set, e)
			}
			continue
		}

		var ev entryValue
		if err := valNode.Decode(&ev); err != nil {
			return nil, fmt.Errorf("configuration '%s': %w", keyNode.Value, err)
		}
		seen[keyNode.Value] = true
		set = append(set, ConfigurationEntry{Key: keyNode.Value, Value: ev.Value})
	}

	return set, nil
}

// decodeMerge expands the value of a merge key: a mapping or a sequence of
// mappings, usually aliases.
func decodeMerge(node *yaml.Node, visiting map[*yaml.Node]bool) (ConfigurationSet, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		return decodeEntries(node, visiting)
	case yaml.SequenceNode:
		var set ConfigurationSet
		seen := make(map[string]bool)
		for _, item := range node.Content {
			if resolveAlias(item).Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: merge sequence must contain mappings", item.Line)
			}
			entries, err := decodeEntries(item, visiting)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if seen[e.Key] {
					continue
				}
				seen[e.Key] = true
				set = append(set, e)
			}
		}
		return set, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", node.Line)
	}
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// MarshalYAML encodes the set as an ordered mapping.
func (s ConfigurationSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range s {
		var valNode yaml.Node
		if err := valNode.Encode(entryValue{Value: e.Value}); err != nil {
			return nil, fmt.Errorf("configuration '%s': %w", e.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&valNode,
		)
	}
	return node, nil
}
