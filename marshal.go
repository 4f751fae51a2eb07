package linkedds

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when YAML input for an AssocList is not a mapping.
var ErrNotMapping = errors.New("yaml node is not a mapping")

// Pair is one entry of an AssocList in serializable form.
type Pair[K comparable, V any] struct {
	Key   K `json:"key" yaml:"key" codec:"key"`
	Value V `json:"value" yaml:"value" codec:"value"`
}

// Pairs returns the entries in order.
func (l *AssocList[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, l.count)
	for n := l.head; n != nil; n = n.next {
		pairs = append(pairs, Pair[K, V]{Key: n.key, Value: n.value})
	}
	return pairs
}

// SetPairs sets every pair in order, as if by Set.
func (l *AssocList[K, V]) SetPairs(pairs []Pair[K, V]) {
	for _, p := range pairs {
		l.Set(p.Key, p.Value)
	}
}

// MarshalJSON encodes the list as an ordered array of {"key","value"}
// objects. JSON object keys are strings only, so an object would lose both
// order and key type.
func (l *AssocList[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Pairs())
}

// UnmarshalJSON replaces the contents of l with the decoded pairs. l is left
// untouched on error.
func (l *AssocList[K, V]) UnmarshalJSON(data []byte) error {
	var pairs []Pair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	l.Clear()
	l.SetPairs(pairs)
	return nil
}

// MarshalYAML encodes the list as a YAML mapping in list order.
func (l *AssocList[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for n := l.head; n != nil; n = n.next {
		var kn, vn yaml.Node
		if err := kn.Encode(n.key); err != nil {
			return nil, fmt.Errorf("yaml encode key %v: %w", n.key, err)
		}
		if err := vn.Encode(n.value); err != nil {
			return nil, fmt.Errorf("yaml encode value of %v: %w", n.key, err)
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

// UnmarshalYAML replaces the contents of l with the entries of a YAML
// mapping, keeping document order. Every undecodable entry is reported; l is
// left untouched on error.
func (l *AssocList[K, V]) UnmarshalYAML(value *yaml.Node) error {
	for value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		l.Clear()
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w", value.Line, ErrNotMapping)
	}

	var mErr *multierror.Error
	pairs := make([]Pair[K, V], 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var p Pair[K, V]
		kn, vn := value.Content[i], value.Content[i+1]
		if err := kn.Decode(&p.Key); err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("line %d: key: %w", kn.Line, err))
			continue
		}
		if err := vn.Decode(&p.Value); err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("line %d: value of %v: %w", vn.Line, p.Key, err))
			continue
		}
		pairs = append(pairs, p)
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return err
	}

	l.Clear()
	l.SetPairs(pairs)
	return nil
}
