package build

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/madergk/biods/internal/config"
	"github.com/madergk/biods/internal/tokens"
)

const generatedHeader = "Do not edit directly, this file was generated by biods from the token source."

type formatContext struct {
	tokens   []tokens.Token
	resolver *Resolver
	prefix   string
	file     config.File
}

type formatFunc func(ctx formatContext) ([]byte, error)

var formatters = map[string]formatFunc{
	config.FormatCSSVariables:   formatCSSVariables,
	config.FormatTSDeclarations: formatTSDeclarations,
	config.FormatJSONNested:     formatJSONNested,
}

func formatCSSVariables(ctx formatContext) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "/**\n * %s\n */\n\n:root {\n", generatedHeader)

	for _, t := range uniqueTokens(ctx.tokens) {
		var value string
		if ctx.file.OutputReferences && t.Value.Kind == tokens.KindString && len(tokens.References(t.Value.Raw)) > 0 {
			if err := ctx.resolver.Check([]tokens.Token{t}); err != nil {
				return nil, err
			}
			value = tokens.ReplaceReferences(t.Value.Raw, func(ref string) string {
				return "var(--" + KebabName(ctx.prefix, strings.Split(ref, ".")) + ")"
			})
		} else {
			resolved, err := ctx.resolver.Resolve(t)
			if err != nil {
				return nil, err
			}
			value = resolved
		}

		if comment := t.Attribute("comment"); comment != nil && comment.Kind == tokens.KindString {
			fmt.Fprintf(&buf, "  --%s: %s; /* %s */\n", KebabName(ctx.prefix, t.FullPath()), value, sanitizeComment(comment.Raw))
			continue
		}
		fmt.Fprintf(&buf, "  --%s: %s;\n", KebabName(ctx.prefix, t.FullPath()), value)
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func formatTSDeclarations(ctx formatContext) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "/**\n * %s\n */\n\n", generatedHeader)

	for _, t := range uniqueTokens(ctx.tokens) {
		node, err := ctx.resolver.ResolvedNode(t)
		if err != nil {
			return nil, err
		}
		if comment := t.Attribute("comment"); comment != nil && comment.Kind == tokens.KindString {
			fmt.Fprintf(&buf, "/** %s */\n", sanitizeComment(comment.Raw))
		}
		fmt.Fprintf(&buf, "export declare const %s: %s;\n", PascalName(ctx.prefix, t.FullPath()), tsType(node))
	}

	return buf.Bytes(), nil
}

func tsType(n *tokens.Node) string {
	switch n.Kind {
	case tokens.KindNumber:
		return "number"
	case tokens.KindBool:
		return "boolean"
	default:
		return "string"
	}
}

// jsonTree is an insertion-ordered object used to emit nested JSON.
type jsonTree struct {
	keys     []string
	children map[string]*jsonTree
	values   map[string]*tokens.Node
}

func newJSONTree() *jsonTree {
	return &jsonTree{children: map[string]*jsonTree{}, values: map[string]*tokens.Node{}}
}

func (j *jsonTree) set(path []string, value *tokens.Node) {
	node := j
	for _, key := range path[:len(path)-1] {
		child, ok := node.children[key]
		if !ok {
			child = newJSONTree()
			node.children[key] = child
			delete(node.values, key)
			node.addKey(key)
		}
		node = child
	}
	leaf := path[len(path)-1]
	if _, ok := node.children[leaf]; ok {
		return
	}
	node.values[leaf] = value
	node.addKey(leaf)
}

func (j *jsonTree) addKey(key string) {
	for _, k := range j.keys {
		if k == key {
			return
		}
	}
	j.keys = append(j.keys, key)
}

func (j *jsonTree) write(buf *bytes.Buffer, indent string) error {
	if len(j.keys) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteString("{\n")
	inner := indent + "  "
	for i, key := range j.keys {
		name, err := marshalJSON(key)
		if err != nil {
			return err
		}
		buf.WriteString(inner)
		buf.Write(name)
		buf.WriteString(": ")
		if child, ok := j.children[key]; ok {
			if err := child.write(buf, inner); err != nil {
				return err
			}
		} else if err := writeJSONScalar(buf, j.values[key]); err != nil {
			return err
		}
		if i < len(j.keys)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString(indent)
	buf.WriteString("}")
	return nil
}

func writeJSONScalar(buf *bytes.Buffer, n *tokens.Node) error {
	switch n.Kind {
	case tokens.KindNumber, tokens.KindBool:
		buf.WriteString(n.Raw)
		return nil
	case tokens.KindNull:
		buf.WriteString("null")
		return nil
	default:
		data, err := marshalJSON(n.Interface())
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}

// marshalJSON encodes v without HTML escaping so "<", ">" and "&" are
// written as they appear in the token source.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func formatJSONNested(ctx formatContext) ([]byte, error) {
	tree := newJSONTree()
	for _, t := range uniqueTokens(ctx.tokens) {
		node, err := ctx.resolver.ResolvedNode(t)
		if err != nil {
			return nil, err
		}
		tree.set(t.FullPath(), node)
	}

	var buf bytes.Buffer
	if err := tree.write(&buf, ""); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// uniqueTokens keeps the last token for each name at the position of its
// first occurrence.
func uniqueTokens(toks []tokens.Token) []tokens.Token {
	index := make(map[string]int, len(toks))
	out := make([]tokens.Token, 0, len(toks))
	for _, t := range toks {
		name := t.Name()
		if i, ok := index[name]; ok {
			out[i] = t
			continue
		}
		index[name] = len(out)
		out = append(out, t)
	}
	return out
}

func sanitizeComment(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "*/", "* /")
}
