package validation

import (
	"fmt"

	bioerrors "github.com/madergk/biods/pkg/errors"
)

// Severity separates findings that fail a run from advisory ones.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Kind identifies the check that produced a finding.
type Kind string

const (
	KindMissingCategory     Kind = "missing_category"
	KindMissingOptional     Kind = "missing_optional_category"
	KindInvalidCategory     Kind = "invalid_category"
	KindMissingValue        Kind = "missing_value"
	KindUnexpectedStructure Kind = "unexpected_structure"
	KindDuplicatePath       Kind = "duplicate_path"
	KindUnknownProperty     Kind = "unknown_property"
	KindRepeatedCategory    Kind = "repeated_category"
)

// Finding is a single validation problem.
type Finding struct {
	Severity Severity `json:"-"`
	Kind     Kind     `json:"kind"`
	// Path is the dotted location, category included.
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Schema lists the categories a token document must or should contain.
type Schema struct {
	Required []string
	Optional []string
}

// DefaultSchema returns the categories of the bio design system.
func DefaultSchema() Schema {
	return Schema{
		Required: []string{"color", "spacing", "typography", "border"},
		Optional: []string{"shadow", "transition", "zIndex"},
	}
}

// Knows reports whether name is a required or optional category.
func (s Schema) Knows(name string) bool {
	for _, list := range [][]string{s.Required, s.Optional} {
		for _, c := range list {
			if c == name {
				return true
			}
		}
	}
	return false
}

// Report accumulates every finding of one validation run.
type Report struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Passed reports whether the run recorded no errors. Warnings never fail it.
func (r Report) Passed() bool {
	return len(r.Errors) == 0
}

// Err converts a failing report into a ValidationError.
func (r Report) Err() error {
	if r.Passed() {
		return nil
	}
	return bioerrors.NewValidationError("tokens", fmt.Sprintf("%d error(s), %d warning(s)", len(r.Errors), len(r.Warnings)), nil)
}

// ErrorsOfKind returns the errors produced by one check.
func (r Report) ErrorsOfKind(kind Kind) []Finding {
	return filterKind(r.Errors, kind)
}

// WarningsOfKind returns the warnings produced by one check.
func (r Report) WarningsOfKind(kind Kind) []Finding {
	return filterKind(r.Warnings, kind)
}

func (r *Report) add(f Finding) {
	if f.Severity == SeverityError {
		r.Errors = append(r.Errors, f)
		return
	}
	r.Warnings = append(r.Warnings, f)
}

func filterKind(findings []Finding, kind Kind) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}
