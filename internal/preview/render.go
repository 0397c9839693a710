package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/madergk/biods/internal/components"
	"github.com/madergk/biods/internal/pagination"
)

var buttonColours = map[components.ButtonVariant]components.Color{
	components.ButtonVariantPrimary:   components.ColorPrimary,
	components.ButtonVariantSecondary: components.ColorSecondary,
	components.ButtonVariantDanger:    components.ColorDanger,
	components.ButtonVariantOutline:   components.ColorPrimary,
	components.ButtonVariantText:      components.ColorPrimary,
}

// Button renders a button as a filled, outlined or bare label.
func Button(theme Theme, b *components.Button) string {
	opts := b.Options()
	colour := buttonColours[opts.Variant]
	if colour == "" {
		colour = components.ColorPrimary
	}

	var style lipgloss.Style
	switch opts.Variant {
	case components.ButtonVariantOutline:
		style = Style(theme, lipgloss.NewStyle(), Boxed(colour), Foreground(colour), Padded())
	case components.ButtonVariantText:
		style = Style(theme, lipgloss.NewStyle().Underline(true), Foreground(colour))
	default:
		style = Style(theme, lipgloss.NewStyle().Bold(true), Filled(colour), Padded())
	}
	if opts.Size == components.SizeLarge {
		style = style.PaddingTop(1).PaddingBottom(1)
	}
	if opts.Disabled {
		style = style.Faint(true)
	}
	return style.Render(b.Label())
}

// Input renders the input wrapper with its current value or placeholder.
func Input(theme Theme, in *components.Input) string {
	opts := in.Options()
	text := in.Value()
	if text == "" {
		text = opts.Placeholder
	}
	return field(theme, text, in.Value() == "", in.Focused(), in.Disabled(), opts.Validation)
}

// PasswordInput renders a masked or clear password field with its toggle.
func PasswordInput(theme Theme, p *components.PasswordInput) string {
	text := p.Value()
	placeholder := text == ""
	if placeholder {
		text = "••••••"
	} else if p.InputType() == "password" {
		text = strings.Repeat("•", len([]rune(text)))
	}
	toggle := "show"
	if p.Visible() {
		toggle = "hide"
	}
	return field(theme, text+"  ["+toggle+"]", placeholder, p.Focused(), p.Disabled(), p.Validation())
}

func field(theme Theme, text string, placeholder, focused, disabled bool, validation components.Validation) string {
	border := components.ColorSecondary
	switch {
	case validation == components.ValidationInvalid:
		border = components.ColorDanger
	case validation == components.ValidationValid:
		border = components.ColorSuccess
	case focused:
		border = components.ColorPrimary
	}
	style := Style(theme, lipgloss.NewStyle().Width(28), Boxed(border), Padded())
	if placeholder || disabled {
		style = style.Faint(true)
	}
	return style.Render(text)
}

var alertColours = map[components.AlertVariant]components.Color{
	components.AlertVariantPrimary:   components.ColorPrimary,
	components.AlertVariantSecondary: components.ColorSecondary,
	components.AlertVariantSuccess:   components.ColorSuccess,
	components.AlertVariantDanger:    components.ColorDanger,
	components.AlertVariantWarning:   components.ColorWarning,
	components.AlertVariantInfo:      components.ColorInfo,
	components.AlertVariantLight:     components.ColorLight,
	components.AlertVariantDark:      components.ColorDark,
}

// Alert renders a bordered message, or nothing once dismissed.
func Alert(theme Theme, a *components.Alert) string {
	if !a.Visible() {
		return ""
	}
	opts := a.Options()
	colour := alertColours[opts.Variant]

	var lines []string
	if opts.Heading != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(opts.Heading))
	}
	lines = append(lines, a.Message())
	if opts.AdditionalText != "" {
		lines = append(lines, opts.AdditionalText)
	}
	if opts.Dismissible {
		lines[0] += "  [×]"
	}
	return Style(theme, lipgloss.NewStyle(), Boxed(colour), Foreground(colour), Padded()).Render(strings.Join(lines, "\n"))
}

// Badge renders a label chip, or a single dot for dot badges.
func Badge(theme Theme, b *components.Badge) string {
	if !b.ShowText() {
		return Style(theme, lipgloss.NewStyle(), Foreground(b.Color)).Render("●")
	}
	text := b.Text
	if b.Type == components.BadgeTypePill {
		text = "(" + text + ")"
	}
	return Style(theme, lipgloss.NewStyle().Bold(true), Filled(b.Color)).Render(" " + text + " ")
}

var spinnerFrames = map[components.SpinnerType]string{
	components.SpinnerTypeBorder:  "◐",
	components.SpinnerTypeGrowing: "●",
}

// Spinner renders a static spinner frame.
func Spinner(theme Theme, s *components.Spinner) string {
	return Style(theme, lipgloss.NewStyle(), Foreground(s.Color)).Render(spinnerFrames[s.Type])
}

// Progress renders the bars on a track of the given width in cells.
func Progress(theme Theme, p *components.Progress, width int) string {
	if width <= 0 {
		width = 30
	}
	var b strings.Builder
	used := 0
	for _, bar := range p.Bars() {
		cells := int(components.ClampPercent(bar.Value)/100*float64(width) + 0.5)
		if used+cells > width {
			cells = width - used
		}
		fill := "█"
		if p.Striped {
			fill = "▚"
		}
		colour := bar.Color
		if colour == "" {
			colour = components.ColorDefault
		}
		b.WriteString(Style(theme, lipgloss.NewStyle(), Foreground(colour)).Render(strings.Repeat(fill, cells)))
		used += cells
	}
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(strings.Repeat("░", width-used)))
	if p.ShowLabel {
		fmt.Fprintf(&b, " %s", components.BarWidth(p.Value))
	}
	return b.String()
}

// Modal renders an open dialog box; a closed modal renders nothing.
func Modal(theme Theme, m *components.Modal, body string) string {
	if !m.IsOpen() {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Render(m.Title)
	if m.ShowClose {
		title += "  [×]"
	}
	return Style(theme, lipgloss.NewStyle(), Boxed(components.ColorDark), Padded()).
		Render(title + "\n\n" + body)
}

var navbarColours = map[components.NavbarScheme]components.Color{
	components.NavbarSchemeDefault: components.ColorPrimary,
	components.NavbarSchemeLight:   components.ColorLight,
	components.NavbarSchemeDark:    components.ColorDark,
}

// Navbar renders the brand bar with its links when expanded.
func Navbar(theme Theme, n *components.Navbar, links []string) string {
	text := n.BrandText + "  ≡"
	if n.Expanded() && len(links) > 0 {
		text += "\n" + strings.Join(links, "  ")
	}
	return Style(theme, lipgloss.NewStyle().Width(40), Filled(navbarColours[n.Scheme]), Padded()).Render(text)
}

// Dropdown renders the trigger and, when open, the menu below it.
func Dropdown(theme Theme, d *components.Dropdown) string {
	trigger := Button(theme, components.NewButton(d.Label()+" ▾", components.ButtonOptions{}))
	if !d.IsOpen() {
		return trigger
	}
	var items []string
	for _, item := range d.Items() {
		style := lipgloss.NewStyle()
		if item.Disabled {
			style = style.Faint(true)
		}
		items = append(items, style.Render(item.Label))
	}
	menu := Style(theme, lipgloss.NewStyle(), Boxed(components.ColorSecondary), Padded()).Render(strings.Join(items, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, trigger, menu)
}

// Pagination renders the previous/next controls around the page window.
// The current page is bracketed.
func Pagination(theme Theme, p *pagination.Pager) string {
	faint := lipgloss.NewStyle().Faint(true)
	current := Style(theme, lipgloss.NewStyle().Bold(true), Foreground(components.ColorPrimary))

	control := func(label string, disabled bool) string {
		if disabled {
			return faint.Render(label)
		}
		return label
	}

	parts := []string{control("‹", p.PreviousDisabled())}
	for _, m := range p.Pages() {
		switch {
		case m.Ellipsis:
			parts = append(parts, faint.Render(m.String()))
		case m.Page == p.Current():
			parts = append(parts, current.Render("["+m.String()+"]"))
		default:
			parts = append(parts, m.String())
		}
	}
	parts = append(parts, control("›", p.NextDisabled()))
	return strings.Join(parts, " ")
}

// LoginForm renders the form fields with their visible errors.
func LoginForm(theme Theme, f *components.LoginForm) string {
	danger := Style(theme, lipgloss.NewStyle(), Foreground(components.ColorDanger))
	rows := []string{"Email", Input(theme, f.Email)}
	if msg := f.FieldError(components.FieldEmail); msg != "" {
		rows = append(rows, danger.Render(msg))
	}
	rows = append(rows, "Password", PasswordInput(theme, f.Password))
	if msg := f.FieldError(components.FieldPassword); msg != "" {
		rows = append(rows, danger.Render(msg))
	}
	rows = append(rows, Button(theme, components.NewButton("Sign in", components.ButtonOptions{Type: "submit"})))
	if msg := f.Success(); msg != "" {
		rows = append(rows, Alert(theme, components.NewAlert(msg, components.AlertOptions{Variant: components.AlertVariantSuccess})))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
