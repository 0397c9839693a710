package tokens

import (
	"regexp"
	"strings"
)

// Token is one flattened token leaf.
type Token struct {
	Category string
	// Path is relative to the category root.
	Path  []string
	Value *Node
	Leaf  *Node
}

// Name returns the fully qualified dotted name, category included.
func (t Token) Name() string {
	return strings.Join(t.FullPath(), ".")
}

// FullPath returns the category followed by the token path.
func (t Token) FullPath() []string {
	return append([]string{t.Category}, t.Path...)
}

// Attribute returns a metadata member of the token leaf such as "comment" or "type".
func (t Token) Attribute(key string) *Node {
	return t.Leaf.Get(key)
}

// Flatten walks every category of the document and returns its token
// leaves. Categories follow Categories(); leaves follow source order.
// Repeated keys produce repeated tokens.
func Flatten(doc *Document) []Token {
	var out []Token
	for _, category := range doc.Categories() {
		out = append(out, FlattenCategory(category, doc.Category(category))...)
	}
	return out
}

// FlattenCategory returns the token leaves of one category subtree.
func FlattenCategory(category string, tree *Node) []Token {
	var out []Token
	var walk func(node *Node, prefix []string)
	walk = func(node *Node, prefix []string) {
		for _, m := range node.Members {
			path := appendPath(prefix, m.Key)
			switch {
			case m.Value.IsToken():
				out = append(out, Token{Category: category, Path: path, Value: m.Value.Get("value"), Leaf: m.Value})
			case m.Value.IsObject():
				walk(m.Value, path)
			}
		}
	}
	if tree.IsObject() {
		walk(tree, nil)
	}
	return out
}

// Lookup resolves a dotted path against the document. When the path ends on
// a token leaf its value is returned, otherwise the node itself.
func Lookup(doc *Document, path string) (*Node, bool) {
	if doc == nil || strings.TrimSpace(path) == "" {
		return nil, false
	}

	node := doc.Root
	for _, key := range strings.Split(path, ".") {
		next := node.Get(key)
		if next == nil {
			return nil, false
		}
		node = next
	}

	if node.IsToken() {
		return node.Get("value"), true
	}
	return node, true
}

var referencePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// References returns the dotted paths aliased by a string value, e.g.
// "{color.primary.500}" yields ["color.primary.500"].
func References(value string) []string {
	matches := referencePattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, strings.TrimSpace(m[1]))
	}
	return refs
}

// ReplaceReferences substitutes every alias in value using fn.
func ReplaceReferences(value string, fn func(ref string) string) string {
	return referencePattern.ReplaceAllStringFunc(value, func(match string) string {
		return fn(strings.TrimSpace(match[1 : len(match)-1]))
	})
}

func appendPath(prefix []string, key string) []string {
	path := make([]string, len(prefix)+1)
	copy(path, prefix)
	path[len(prefix)] = key
	return path
}
