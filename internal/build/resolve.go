package build

import (
	"fmt"
	"strings"

	"github.com/madergk/biods/internal/tokens"
)

// Resolver expands {path} aliases between tokens.
type Resolver struct {
	byName map[string]tokens.Token
}

// NewResolver indexes tokens by name. A later token with the same name
// replaces an earlier one.
func NewResolver(toks []tokens.Token) *Resolver {
	byName := make(map[string]tokens.Token, len(toks))
	for _, t := range toks {
		byName[t.Name()] = t
	}
	return &Resolver{byName: byName}
}

// Resolve returns the token value with every alias expanded.
func (r *Resolver) Resolve(t tokens.Token) (string, error) {
	return r.resolve(t, []string{t.Name()})
}

func (r *Resolver) resolve(t tokens.Token, chain []string) (string, error) {
	value := t.Value.Text()
	if t.Value.Kind != tokens.KindString || len(tokens.References(value)) == 0 {
		return value, nil
	}

	var resolveErr error
	out := tokens.ReplaceReferences(value, func(ref string) string {
		if resolveErr != nil {
			return ""
		}
		for _, seen := range chain {
			if seen == ref {
				resolveErr = fmt.Errorf("circular reference: %s -> %s", strings.Join(chain, " -> "), ref)
				return ""
			}
		}
		target, ok := r.byName[ref]
		if !ok {
			resolveErr = fmt.Errorf("token %s references unknown token %q", t.Name(), ref)
			return ""
		}
		resolved, err := r.resolve(target, append(append([]string(nil), chain...), ref))
		if err != nil {
			resolveErr = err
			return ""
		}
		return resolved
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return out, nil
}

// ResolvedNode returns the value as a node: a single alias to a number stays
// a number, everything else with aliases becomes a string.
func (r *Resolver) ResolvedNode(t tokens.Token) (*tokens.Node, error) {
	if t.Value.Kind != tokens.KindString || len(tokens.References(t.Value.Raw)) == 0 {
		return t.Value, nil
	}
	text, err := r.Resolve(t)
	if err != nil {
		return nil, err
	}
	refs := tokens.References(t.Value.Raw)
	if len(refs) == 1 && strings.TrimSpace(t.Value.Raw) == "{"+refs[0]+"}" {
		if target, ok := r.byName[refs[0]]; ok {
			node, err := r.ResolvedNode(target)
			if err != nil {
				return nil, err
			}
			if node.Kind != tokens.KindString {
				return node, nil
			}
		}
	}
	return &tokens.Node{Kind: tokens.KindString, Raw: text}, nil
}

// Check resolves every token and returns the first failure.
func (r *Resolver) Check(toks []tokens.Token) error {
	for _, t := range toks {
		if _, err := r.Resolve(t); err != nil {
			return err
		}
	}
	return nil
}
