package transform

import (
	"bytes"
	"encoding/json"
)

// Node is the in-memory result of resolving one entity: the flat field
// mapping produced by its Transformer plus, for each requested include, the
// resolved related node(s). Nodes are created per request and discarded after
// encoding.
type Node struct {
	fields   Fields
	order    []string
	includes map[string]embeddedRelation
}

// embeddedRelation is a resolved include attached to a Node. It marshals with
// one extra {"data": ...} level so every embedded relation has a parallel
// meta slot available.
type embeddedRelation struct {
	collection bool
	one        *Node
	many       []*Node
}

func newNode(fields Fields) *Node {
	return &Node{
		fields:   fields,
		includes: make(map[string]embeddedRelation),
	}
}

func (n *Node) attachOne(name string, child *Node) {
	n.order = append(n.order, name)
	n.includes[name] = embeddedRelation{one: child}
}

func (n *Node) attachMany(name string, children []*Node) {
	n.order = append(n.order, name)
	n.includes[name] = embeddedRelation{collection: true, many: children}
}

// Fields returns the flat field mapping of the node.
func (n *Node) Fields() Fields {
	return n.fields
}

// Includes returns the attached include names in the order the client
// requested them.
func (n *Node) Includes() []string {
	return n.order
}

// MarshalJSON encodes the node as a JSON object: transformed fields first, in
// the order the Transformer set them, then each embedded relation under its
// include name wrapped as {"data": ...}.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, field := range n.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, field.Key, field.Value); err != nil {
			return nil, err
		}
	}

	for _, name := range n.order {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		rel := n.includes[name]
		var data any
		if rel.collection {
			nodes := rel.many
			if nodes == nil {
				nodes = []*Node{}
			}
			data = nodes
		} else {
			data = rel.one
		}
		if err := writeMember(&buf, name, Document{Data: data}); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	encodedKey, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(encodedKey)
	buf.WriteByte(':')
	encodedValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(encodedValue)
	return nil
}
