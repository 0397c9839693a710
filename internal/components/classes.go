// Package components derives the presentational state of the bio design
// system components: CSS class lists, derived attributes and the small state
// machines (dismiss, toggle, open/close) behind them. Everything here is a
// pure function of the component options plus explicit state transitions.
package components

import "strings"

// Size is the shared sm/md/lg scale used by buttons, inputs and dropdowns.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

func sizeOrDefault(s Size) Size {
	if s == "" {
		return SizeMedium
	}
	return s
}

// classList drops empty entries and joins the rest with a single space.
func classList(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// modifier returns block--name when cond holds, otherwise "".
func modifier(block, name string, cond bool) string {
	if !cond || name == "" {
		return ""
	}
	return block + "--" + name
}
