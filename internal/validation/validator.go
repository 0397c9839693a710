package validation

import (
	"fmt"

	"github.com/madergk/biods/internal/tokens"
)

// Validate runs every check against doc and returns all findings at once.
// It holds no state between calls, so repeated runs give identical reports.
func Validate(doc *tokens.Document, schema Schema) Report {
	var report Report
	if doc == nil || doc.Root == nil {
		report.add(Finding{Severity: SeverityError, Kind: KindInvalidCategory, Message: "token document is empty"})
		return report
	}

	for _, name := range schema.Required {
		checkCategory(&report, doc, name, true)
	}
	for _, name := range schema.Optional {
		checkCategory(&report, doc, name, false)
	}

	checkRepeatedCategories(&report, doc)
	checkUnknownProperties(&report, doc, schema)

	return report
}

func checkCategory(report *Report, doc *tokens.Document, name string, required bool) {
	tree := doc.Category(name)
	validateCategory(report, name, tree, required)
	if tree.IsObject() {
		checkForDuplicates(report, tree, name)
	}
}

func validateCategory(report *Report, name string, tree *tokens.Node, required bool) {
	if tree == nil || tree.Kind == tokens.KindNull {
		if required {
			report.add(Finding{
				Severity: SeverityError,
				Kind:     KindMissingCategory,
				Path:     name,
				Message:  fmt.Sprintf("Required category %q is missing", name),
			})
		} else {
			report.add(Finding{
				Severity: SeverityWarning,
				Kind:     KindMissingOptional,
				Path:     name,
				Message:  fmt.Sprintf("Optional category %q is missing", name),
			})
		}
		return
	}

	if !tree.IsObject() {
		report.add(Finding{
			Severity: SeverityError,
			Kind:     KindInvalidCategory,
			Path:     name,
			Message:  fmt.Sprintf("Category %q must be an object", name),
		})
		return
	}

	validateTokenRecursive(report, name, tree, "")
}

func validateTokenRecursive(report *Report, category string, node *tokens.Node, prefix string) {
	for _, m := range node.Members {
		path := joinPath(prefix, m.Key)
		full := category + "." + path

		switch {
		case m.Value.IsToken():
			validateTokenValue(report, m.Value, full)
		case m.Value.IsObject():
			validateTokenRecursive(report, category, m.Value, path)
		default:
			report.add(Finding{
				Severity: SeverityWarning,
				Kind:     KindUnexpectedStructure,
				Path:     full,
				Message:  fmt.Sprintf("Unexpected structure at %q", full),
			})
		}
	}
}

// validateTokenValue accepts any present value, including "" and 0.
// JSON null is how an undefined value reaches us.
func validateTokenValue(report *Report, leaf *tokens.Node, path string) {
	value := leaf.Get("value")
	if value == nil || value.Kind == tokens.KindNull {
		report.add(Finding{
			Severity: SeverityError,
			Kind:     KindMissingValue,
			Path:     path,
			Message:  fmt.Sprintf("Token at %q missing required \"value\" property", path),
		})
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
