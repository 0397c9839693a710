package build

import (
	"strings"
	"unicode"
)

// KebabName turns a token path into a CSS custom property name without the
// leading dashes: ["color", "primary", "500"] → "color-primary-500",
// ["zIndex", "modal"] → "z-index-modal".
func KebabName(prefix string, path []string) string {
	var words []string
	if prefix != "" {
		words = append(words, splitWords(prefix)...)
	}
	for _, part := range path {
		words = append(words, splitWords(part)...)
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// PascalName turns a token path into an exported identifier:
// ["color", "primary", "500"] → "ColorPrimary500".
func PascalName(prefix string, path []string) string {
	var b strings.Builder
	parts := path
	if prefix != "" {
		parts = append([]string{prefix}, path...)
	}
	for _, part := range parts {
		for _, w := range splitWords(part) {
			r := []rune(strings.ToLower(w))
			r[0] = unicode.ToUpper(r[0])
			b.WriteString(string(r))
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}

// splitWords breaks a key on separators and lower-to-upper case changes.
func splitWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}
