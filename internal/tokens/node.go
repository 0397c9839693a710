package tokens

import (
	"encoding/json"
	"strconv"
)

// Kind classifies a JSON node.
type Kind int

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "null"
	}
}

// Member is one key/value pair of an object, in source order.
type Member struct {
	Key   string
	Value *Node
}

// Node is a JSON value that remembers member order and repeated keys.
type Node struct {
	Kind    Kind
	Members []Member
	Items   []*Node
	// Raw holds the unescaped string, the number literal, or "true"/"false".
	Raw string
}

// IsObject reports whether the node is a JSON object.
func (n *Node) IsObject() bool {
	return n != nil && n.Kind == KindObject
}

// Get returns the value of the last member named key, matching what a
// regular JSON decoder would keep.
func (n *Node) Get(key string) *Node {
	if !n.IsObject() {
		return nil
	}
	for i := len(n.Members) - 1; i >= 0; i-- {
		if n.Members[i].Key == key {
			return n.Members[i].Value
		}
	}
	return nil
}

// Has reports whether the object declares key at least once.
func (n *Node) Has(key string) bool {
	if !n.IsObject() {
		return false
	}
	for _, m := range n.Members {
		if m.Key == key {
			return true
		}
	}
	return false
}

// IsToken reports whether the node is a token leaf: an object with a "value" key.
func (n *Node) IsToken() bool {
	return n.Has("value")
}

// Text renders a scalar as it would appear in a stylesheet.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindString, KindNumber, KindBool:
		return n.Raw
	case KindNull:
		return "null"
	default:
		data, err := json.Marshal(n.Interface())
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Interface converts the node into plain Go values. Repeated keys collapse
// to their last occurrence and numbers become json.Number.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindObject:
		out := make(map[string]any, len(n.Members))
		for _, m := range n.Members {
			out[m.Key] = m.Value.Interface()
		}
		return out
	case KindArray:
		out := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			out = append(out, item.Interface())
		}
		return out
	case KindString:
		return n.Raw
	case KindNumber:
		return json.Number(n.Raw)
	case KindBool:
		b, _ := strconv.ParseBool(n.Raw)
		return b
	default:
		return nil
	}
}
