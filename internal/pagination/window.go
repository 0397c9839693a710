// Package pagination computes which page buttons a pagination control shows
// and decides which page-change requests are honored.
package pagination

import (
	"strconv"
	"strings"
)

// MaxVisible is the window size below which every page is listed.
const MaxVisible = 5

// Marker is one visible pagination slot: a page number or an ellipsis.
type Marker struct {
	Page     int
	Ellipsis bool
}

// PageMarker returns a marker for page p.
func PageMarker(p int) Marker { return Marker{Page: p} }

// EllipsisMarker returns the marker standing for a collapsed run of pages.
func EllipsisMarker() Marker { return Marker{Ellipsis: true} }

func (m Marker) String() string {
	if m.Ellipsis {
		return "…"
	}
	return strconv.Itoa(m.Page)
}

// Window returns the visible markers for the given state. It is a pure
// function: current is not clamped and nothing is cached. The result never
// holds more than seven markers.
func Window(current, total int) []Marker {
	if total <= MaxVisible {
		markers := make([]Marker, 0, max(total, 0))
		for p := 1; p <= total; p++ {
			markers = append(markers, PageMarker(p))
		}
		return markers
	}

	switch {
	case current <= 3:
		return []Marker{
			PageMarker(1), PageMarker(2), PageMarker(3), PageMarker(4),
			EllipsisMarker(),
			PageMarker(total),
		}
	case current >= total-2:
		return []Marker{
			PageMarker(1),
			EllipsisMarker(),
			PageMarker(total - 3), PageMarker(total - 2), PageMarker(total - 1), PageMarker(total),
		}
	default:
		return []Marker{
			PageMarker(1),
			EllipsisMarker(),
			PageMarker(current - 1), PageMarker(current), PageMarker(current + 1),
			EllipsisMarker(),
			PageMarker(total),
		}
	}
}

// Format renders markers separated by spaces, e.g. "1 … 4 5 6 … 10".
func Format(markers []Marker) string {
	parts := make([]string, len(markers))
	for i, m := range markers {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
