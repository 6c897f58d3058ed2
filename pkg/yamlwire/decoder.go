package yamlwire

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/arraywire"
)

// Deserializer walks a parsed yaml sequence node.
type Deserializer struct {
	node *yaml.Node
}

func NewDeserializer(data []byte) (*Deserializer, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	n := &doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	return &Deserializer{node: n}, nil
}

// NewNodeDeserializer reads directly from an already-parsed node, e.g. one
// field of a larger document.
func NewNodeDeserializer(node *yaml.Node) *Deserializer {
	return &Deserializer{node: node}
}

func (d *Deserializer) DeserializeTuple(_ int) (arraywire.SeqSource, error) {
	if d.node == nil || d.node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("yamlwire: expected sequence node")
	}
	return &source{items: d.node.Content}, nil
}

type source struct {
	items []*yaml.Node
	pos   int
}

func (s *source) Next(v any) (bool, error) {
	if s.pos == len(s.items) {
		return false, nil
	}
	if err := s.items[s.pos].Decode(v); err != nil {
		return false, err
	}
	s.pos++
	return true, nil
}
