// Package preview renders the design system components as terminal text so
// the catalog can be browsed without a browser. Colours and spacing come
// from the token document when one is available.
package preview

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/madergk/biods/internal/build"
	"github.com/madergk/biods/internal/components"
	"github.com/madergk/biods/internal/tokens"
)

// ColourSet represents a semantic color set with base, on-base and muted colors.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Theme holds the resolved styling inputs for every renderer.
type Theme struct {
	Palette map[components.Color]ColourSet
	// Padding is the horizontal cell padding of boxed components.
	Padding int
	Border  lipgloss.Border
	// Source names where the colours came from: "tokens" or "default".
	Source string
}

// Colour returns the set for c, falling back to the primary set.
func (t Theme) Colour(c components.Color) ColourSet {
	if cs, ok := t.Palette[c]; ok {
		return cs
	}
	return t.Palette[components.ColorPrimary]
}

// DefaultTheme returns the built-in palette used when no tokens are loaded.
func DefaultTheme() Theme {
	set := func(base, onBase, muted string) ColourSet {
		return ColourSet{Base: lipgloss.Color(base), OnBase: lipgloss.Color(onBase), Muted: lipgloss.Color(muted)}
	}
	return Theme{
		Palette: map[components.Color]ColourSet{
			components.ColorDefault:   set("#2196f3", "#ffffff", "#1976d2"),
			components.ColorPrimary:   set("#2196f3", "#ffffff", "#1976d2"),
			components.ColorSecondary: set("#6c757d", "#ffffff", "#5a6268"),
			components.ColorSuccess:   set("#4caf50", "#ffffff", "#388e3c"),
			components.ColorDanger:    set("#f44336", "#ffffff", "#d32f2f"),
			components.ColorWarning:   set("#ff9800", "#212529", "#f57c00"),
			components.ColorInfo:      set("#00bcd4", "#ffffff", "#0097a7"),
			components.ColorLight:     set("#f8f9fa", "#212529", "#e9ecef"),
			components.ColorDark:      set("#212529", "#ffffff", "#343a40"),
		},
		Padding: 1,
		Border:  lipgloss.RoundedBorder(),
		Source:  "default",
	}
}

// shadeKeys are tried in order when picking the representative shade of a
// colour group.
var shadeKeys = []string{"500", "main", "base", "default", "DEFAULT", "600", "400"}

// ThemeFromTokens overlays colour and spacing tokens on the default theme.
// Colours not present in the document keep their default.
func ThemeFromTokens(doc *tokens.Document) Theme {
	theme := DefaultTheme()
	if doc == nil {
		return theme
	}

	resolver := build.NewResolver(tokens.Flatten(doc))
	resolve := func(path string) (string, bool) {
		node, ok := tokens.Lookup(doc, path)
		if !ok || node.Kind == tokens.KindObject || node.Kind == tokens.KindNull {
			return "", false
		}
		parts := strings.Split(path, ".")
		value, err := resolver.Resolve(tokens.Token{Category: parts[0], Path: parts[1:], Value: node})
		if err != nil {
			return "", false
		}
		return value, true
	}

	found := false
	for name, cs := range theme.Palette {
		base, ok := firstResolved(resolve, "color."+string(name), shadeKeys)
		if !ok {
			continue
		}
		cs.Base = lipgloss.Color(base)
		if muted, ok := firstResolved(resolve, "color."+string(name), []string{"700", "dark", "600"}); ok {
			cs.Muted = lipgloss.Color(muted)
		}
		theme.Palette[name] = cs
		found = true
	}

	for _, key := range []string{"spacing.sm", "spacing.base", "spacing.md", "spacing.2"} {
		if raw, ok := resolve(key); ok {
			if cells, ok := spacingCells(raw); ok {
				theme.Padding = cells
				found = true
				break
			}
		}
	}

	if found {
		theme.Source = "tokens"
	}
	return theme
}

func firstResolved(resolve func(string) (string, bool), group string, keys []string) (string, bool) {
	if v, ok := resolve(group); ok && looksLikeColour(v) {
		return v, true
	}
	for _, key := range keys {
		if v, ok := resolve(group + "." + key); ok && looksLikeColour(v) {
			return v, true
		}
	}
	return "", false
}

func looksLikeColour(v string) bool {
	v = strings.TrimSpace(v)
	return strings.HasPrefix(v, "#") && (len(v) == 4 || len(v) == 7 || len(v) == 9)
}

// spacingCells converts a CSS length to terminal cells: 8px or 0.5rem per
// cell, clamped to 0..4.
func spacingCells(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	scale := 1.0 / 8
	switch {
	case strings.HasSuffix(raw, "rem"):
		raw = strings.TrimSuffix(raw, "rem")
		scale = 2
	case strings.HasSuffix(raw, "px"):
		raw = strings.TrimSuffix(raw, "px")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || n < 0 {
		return 0, false
	}
	cells := int(n*scale + 0.5)
	if cells > 4 {
		cells = 4
	}
	return cells, true
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: cloneTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = cloneTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneTheme(m.theme)
}

func cloneTheme(theme Theme) Theme {
	palette := make(map[components.Color]ColourSet, len(theme.Palette))
	for k, v := range theme.Palette {
		palette[k] = v
	}
	theme.Palette = palette
	return theme
}

// StyleFunc applies theme-based styling to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Style applies a series of modifiers to create a final style.
func Style(theme Theme, base lipgloss.Style, appliers ...StyleFunc) lipgloss.Style {
	for _, apply := range appliers {
		base = apply(base, theme)
	}
	return base
}

// Filled paints the background with the colour and the text with its on-base.
func Filled(c components.Color) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		cs := t.Colour(c)
		return s.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground paints the text with the colour.
func Foreground(c components.Color) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(t.Colour(c).Base)
	}
}

// Boxed draws the theme border in the colour.
func Boxed(c components.Color) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Border(t.Border).BorderForeground(t.Colour(c).Base)
	}
}

// Padded applies the theme horizontal padding.
func Padded() StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Padding(0, t.Padding)
	}
}
