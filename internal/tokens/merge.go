package tokens

import "strings"

// LoadAll loads every path and merges them in order.
func LoadAll(paths []string) (*Document, error) {
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return Merge(docs...), nil
}

// Merge combines documents into one. Groups are merged recursively; when
// two files define the same token or scalar, the later file wins. Keys
// repeated inside a single file are kept so the duplicate check still sees
// them. The inputs are not modified.
func Merge(docs ...*Document) *Document {
	switch len(docs) {
	case 0:
		return &Document{Root: &Node{Kind: KindObject}}
	case 1:
		return docs[0]
	}

	root := &Node{Kind: KindObject}
	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		mergeInto(root, d.Root)
		if d.Path != "" {
			paths = append(paths, d.Path)
		}
	}
	return &Document{Path: strings.Join(paths, ", "), Root: root}
}

func mergeInto(dst, src *Node) {
	if src == nil {
		return
	}
	// A key repeated inside src is appended again rather than merged, so
	// in-file repeats survive.
	seen := make(map[string]bool, len(src.Members))
	for _, m := range src.Members {
		idx := -1
		if !seen[m.Key] {
			idx = lastIndex(dst, m.Key)
		}
		seen[m.Key] = true

		switch {
		case idx < 0:
			dst.Members = append(dst.Members, Member{Key: m.Key, Value: clone(m.Value)})
		case isGroup(dst.Members[idx].Value) && isGroup(m.Value):
			mergeInto(dst.Members[idx].Value, m.Value)
		default:
			dst.Members[idx].Value = clone(m.Value)
		}
	}
}

func isGroup(n *Node) bool {
	return n.IsObject() && !n.IsToken()
}

func lastIndex(n *Node, key string) int {
	for i := len(n.Members) - 1; i >= 0; i-- {
		if n.Members[i].Key == key {
			return i
		}
	}
	return -1
}

func clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Raw: n.Raw}
	if n.Members != nil {
		out.Members = make([]Member, len(n.Members))
		for i, m := range n.Members {
			out.Members[i] = Member{Key: m.Key, Value: clone(m.Value)}
		}
	}
	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			out.Items[i] = clone(item)
		}
	}
	return out
}
