// Package yamlwire adapts yaml.v3 document trees to the arraywire
// sink/source contract. Sequences are built as flow-style sequence nodes;
// the caller marshals the finished node with yaml.Marshal.
package yamlwire

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/arraywire"
)

// Serializer builds a yaml sequence node.
type Serializer struct {
	node *yaml.Node
}

func NewSerializer() *Serializer {
	return &Serializer{}
}

// Node returns the sequence node built by the last Serialize call.
func (s *Serializer) Node() *yaml.Node {
	return s.node
}

func (s *Serializer) SerializeTuple(n int) (arraywire.SeqSink, error) {
	return s.open(n)
}

func (s *Serializer) SerializeSeq(n int) (arraywire.SeqSink, error) {
	return s.open(n)
}

func (s *Serializer) open(n int) (arraywire.SeqSink, error) {
	s.node = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	return &sink{node: s.node, want: n}, nil
}

type sink struct {
	node *yaml.Node
	want int
}

func (k *sink) Element(v any) error {
	if m, ok := v.(arraywire.Serializable); ok {
		// nested arrays build their own node on a fresh serializer so the
		// outer node is not clobbered
		sub := NewSerializer()
		if err := m.Serialize(sub); err != nil {
			return err
		}
		k.node.Content = append(k.node.Content, sub.Node())
		return nil
	}
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return err
	}
	k.node.Content = append(k.node.Content, &n)
	return nil
}

func (k *sink) End() error {
	if len(k.node.Content) != k.want {
		return fmt.Errorf("yamlwire: sequence declared %d elements, wrote %d", k.want, len(k.node.Content))
	}
	return nil
}
