package validation

import (
	"fmt"

	"github.com/madergk/biods/internal/tokens"
)

// checkForDuplicates walks the category a second time, independently of the
// shape check, and reports each flattened path that occurs more than once.
func checkForDuplicates(report *Report, tree *tokens.Node, category string) {
	counts := make(map[string]int)
	var order []string

	var collect func(node *tokens.Node, prefix string)
	collect = func(node *tokens.Node, prefix string) {
		for _, m := range node.Members {
			path := joinPath(prefix, m.Key)
			switch {
			case m.Value.IsToken():
				counts[path]++
				if counts[path] == 2 {
					order = append(order, path)
				}
			case m.Value.IsObject():
				collect(m.Value, path)
			}
		}
	}
	collect(tree, "")

	for _, path := range order {
		report.add(Finding{
			Severity: SeverityError,
			Kind:     KindDuplicatePath,
			Path:     category + "." + path,
			Message:  fmt.Sprintf("Duplicate token path %q found in %q (%d occurrences)", path, category, counts[path]),
		})
	}
}

func checkRepeatedCategories(report *Report, doc *tokens.Document) {
	for _, key := range doc.RepeatedKeys() {
		if tokens.IsMetadataKey(key) {
			continue
		}
		report.add(Finding{
			Severity: SeverityWarning,
			Kind:     KindRepeatedCategory,
			Path:     key,
			Message:  fmt.Sprintf("Top-level property %q is defined more than once; the last definition is used", key),
		})
	}
}

func checkUnknownProperties(report *Report, doc *tokens.Document, schema Schema) {
	seen := make(map[string]struct{})
	for _, m := range doc.Root.Members {
		if _, ok := seen[m.Key]; ok {
			continue
		}
		seen[m.Key] = struct{}{}

		if schema.Knows(m.Key) || tokens.IsMetadataKey(m.Key) {
			continue
		}
		report.add(Finding{
			Severity: SeverityWarning,
			Kind:     KindUnknownProperty,
			Path:     m.Key,
			Message:  fmt.Sprintf("Unknown top-level property: %q", m.Key),
		})
	}
}
