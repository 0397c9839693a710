package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/buger/jsonparser"

	bioerrors "github.com/madergk/biods/pkg/errors"
)

// Document is a parsed token source. It is never mutated after Parse.
type Document struct {
	Path string
	Root *Node
}

// Load reads and parses the token file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bioerrors.NewParseError(path, 0, 0, err)
	}

	doc, err := Parse(data)
	if err != nil {
		var parseErr *bioerrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, bioerrors.NewParseError(path, 0, 0, err)
	}

	doc.Path = path
	return doc, nil
}

// Parse decodes a token document. The top level must be a JSON object.
func Parse(data []byte) (*Document, error) {
	// encoding/json reports the byte offset of syntax errors; jsonparser
	// below is lenient and does not.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			line, col := position(data, syntaxErr.Offset)
			return nil, bioerrors.NewParseError("", line, col, err)
		}
		return nil, bioerrors.NewParseError("", 0, 0, err)
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, bioerrors.NewParseError("", 0, 0, err)
	}
	if dataType != jsonparser.Object {
		return nil, bioerrors.NewParseError("", 0, 0, fmt.Errorf("token document must be a JSON object, got %s", kindOf(dataType)))
	}

	root, err := decode(value, dataType)
	if err != nil {
		return nil, bioerrors.NewParseError("", 0, 0, err)
	}

	return &Document{Root: root}, nil
}

// Category returns the subtree for a top-level key, or nil when absent.
func (d *Document) Category(name string) *Node {
	if d == nil {
		return nil
	}
	return d.Root.Get(name)
}

// IsMetadataKey reports whether a top-level key is schema or comment metadata.
func IsMetadataKey(key string) bool {
	return strings.HasPrefix(key, "$") || strings.HasPrefix(key, "comment")
}

// Categories lists the distinct top-level keys holding objects, in order of
// first appearance, skipping metadata keys.
func (d *Document) Categories() []string {
	if d == nil || d.Root == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(d.Root.Members))
	var names []string
	for _, m := range d.Root.Members {
		if IsMetadataKey(m.Key) {
			continue
		}
		if _, ok := seen[m.Key]; ok {
			continue
		}
		seen[m.Key] = struct{}{}
		if d.Root.Get(m.Key).IsObject() {
			names = append(names, m.Key)
		}
	}
	return names
}

// RepeatedKeys returns the top-level keys declared more than once.
func (d *Document) RepeatedKeys() []string {
	if d == nil || d.Root == nil {
		return nil
	}
	counts := make(map[string]int, len(d.Root.Members))
	var repeated []string
	for _, m := range d.Root.Members {
		counts[m.Key]++
		if counts[m.Key] == 2 {
			repeated = append(repeated, m.Key)
		}
	}
	return repeated
}

func decode(value []byte, dataType jsonparser.ValueType) (*Node, error) {
	switch dataType {
	case jsonparser.Object:
		node := &Node{Kind: KindObject}
		// ObjectEach hands keys over already unescaped.
		err := jsonparser.ObjectEach(value, func(key, member []byte, memberType jsonparser.ValueType, _ int) error {
			child, err := decode(member, memberType)
			if err != nil {
				return err
			}
			node.Members = append(node.Members, Member{Key: string(key), Value: child})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	case jsonparser.Array:
		node := &Node{Kind: KindArray}
		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			child, err := decode(item, itemType)
			if err != nil {
				itemErr = err
				return
			}
			node.Items = append(node.Items, child)
		})
		if err != nil {
			return nil, err
		}
		if itemErr != nil {
			return nil, itemErr
		}
		return node, nil
	case jsonparser.String:
		text, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindString, Raw: text}, nil
	case jsonparser.Number:
		return &Node{Kind: KindNumber, Raw: string(value)}, nil
	case jsonparser.Boolean:
		return &Node{Kind: KindBool, Raw: string(value)}, nil
	case jsonparser.Null:
		return &Node{Kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value %q", string(value))
	}
}

func kindOf(dataType jsonparser.ValueType) string {
	switch dataType {
	case jsonparser.Array:
		return "array"
	case jsonparser.String:
		return "string"
	case jsonparser.Number:
		return "number"
	case jsonparser.Boolean:
		return "boolean"
	case jsonparser.Null:
		return "null"
	default:
		return "object"
	}
}

func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
