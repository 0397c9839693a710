package components

import (
	"math"
	"strconv"
)

// SpinnerType is the spinner animation style.
type SpinnerType string

const (
	SpinnerTypeBorder  SpinnerType = "border"
	SpinnerTypeGrowing SpinnerType = "growing"
)

// Spinner is an indeterminate loading indicator.
type Spinner struct {
	Type  SpinnerType
	Color Color
}

// NewSpinner returns a dark border spinner.
func NewSpinner() *Spinner {
	return &Spinner{Type: SpinnerTypeBorder, Color: ColorDark}
}

// Classes returns the CSS class list for the spinner element.
func (s *Spinner) Classes() string {
	return classList("bio-spinner", "bio-spinner--"+string(s.Type), "bio-spinner--"+string(s.Color))
}

// ProgressBar is one segment of a progress component.
type ProgressBar struct {
	Value float64
	Color Color
	Label string
}

// Progress is a determinate progress indicator with one or more bars.
type Progress struct {
	Value     float64
	Color     Color
	Striped   bool
	ShowLabel bool
	// Multiple replaces the single Value/Color bar when non-empty.
	Multiple []ProgressBar
}

// NewProgress returns a single default-coloured bar at value.
func NewProgress(value float64) *Progress {
	return &Progress{Value: value, Color: ColorDefault}
}

// IsMultiple reports whether the component renders stacked bars.
func (p *Progress) IsMultiple() bool {
	return len(p.Multiple) > 0
}

// Bars returns the bars to render.
func (p *Progress) Bars() []ProgressBar {
	if p.IsMultiple() {
		return p.Multiple
	}
	return []ProgressBar{{Value: p.Value, Color: p.Color}}
}

// Classes returns the CSS class list for the progress track.
func (p *Progress) Classes() string {
	return classList("bio-progress", modifier("bio-progress", "striped", p.Striped))
}

// BarClasses returns the CSS class list for a bar of the given colour.
func (p *Progress) BarClasses(color Color) string {
	if color == "" {
		color = ColorDefault
	}
	const block = "bio-progress__bar"
	return classList(block, block+"--"+string(color), modifier(block, "striped", p.Striped))
}

// ClampPercent limits a bar value to 0..100.
func ClampPercent(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return math.Min(100, math.Max(0, value))
}

// BarWidth is the CSS width of a bar, e.g. "42.5%".
func BarWidth(value float64) string {
	return strconv.FormatFloat(ClampPercent(value), 'f', -1, 64) + "%"
}
