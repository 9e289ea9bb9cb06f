package espn

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// NodeKind tags the variant held by a Node.
type NodeKind uint8

const (
	NullNode NodeKind = iota
	BoolNode
	NumberNode
	StringNode
	ArrayNode
	ObjectNode
)

// Member is one key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value *Node
}

// Node is an untyped JSON value that keeps object keys in document order.
type Node struct {
	Kind    NodeKind
	Bool    bool
	Number  float64
	String  string
	Items   []*Node
	Members []Member
}

// Get returns the first member named key, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != ObjectNode {
		return nil
	}
	for _, m := range n.Members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Index returns the i-th array element, or nil.
func (n *Node) Index(i int) *Node {
	if n == nil || n.Kind != ArrayNode || i < 0 || i >= len(n.Items) {
		return nil
	}
	return n.Items[i]
}

// Str returns the string value, or "" for any other kind.
func (n *Node) Str() string {
	if n == nil || n.Kind != StringNode {
		return ""
	}
	return n.String
}

// Num returns the numeric value when the node is a number.
func (n *Node) Num() (float64, bool) {
	if n == nil || n.Kind != NumberNode {
		return 0, false
	}
	return n.Number, true
}

// DecodeTree parses a single JSON document.
func DecodeTree(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeNode(dec)
	if err != nil {
		return nil, errors.Wrap(err, "decode json tree")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json tree: trailing data")
	}
	return root, nil
}

func decodeNode(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			n := &Node{Kind: ObjectNode}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, errors.Newf("object key is %T", keyTok)
				}
				child, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				n.Members = append(n.Members, Member{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &Node{Kind: ArrayNode}
			for dec.More() {
				child, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				n.Items = append(n.Items, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		}
		return nil, errors.Newf("unexpected delimiter %q", v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, errors.Wrapf(err, "number %s", v)
		}
		return &Node{Kind: NumberNode, Number: f}, nil
	case string:
		return &Node{Kind: StringNode, String: v}, nil
	case bool:
		return &Node{Kind: BoolNode, Bool: v}, nil
	case nil:
		return &Node{Kind: NullNode}, nil
	}
	return nil, errors.Newf("unexpected token %T", tok)
}
