package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/madergk/biods/internal/components"
	"github.com/madergk/biods/internal/pagination"
)

// Story is one named rendering of a component.
type Story struct {
	Component string
	Name      string
	Render    func(Theme) string
}

// Title is "Component / Name".
func (s Story) Title() string {
	return s.Component + " / " + s.Name
}

// Stories returns the static catalog in display order.
func Stories() []Story {
	return []Story{
		{"Button", "Variants", func(t Theme) string {
			var row []string
			for _, v := range []components.ButtonVariant{
				components.ButtonVariantPrimary,
				components.ButtonVariantSecondary,
				components.ButtonVariantOutline,
				components.ButtonVariantText,
				components.ButtonVariantDanger,
			} {
				row = append(row, Button(t, components.NewButton(string(v), components.ButtonOptions{Variant: v})))
			}
			return lipgloss.JoinHorizontal(lipgloss.Center, spaced(row)...)
		}},
		{"Button", "Disabled", func(t Theme) string {
			return Button(t, components.NewButton("Disabled", components.ButtonOptions{Disabled: true}))
		}},
		{"Input", "Default", func(t Theme) string {
			return Input(t, components.NewInput(components.InputOptions{Placeholder: "Enter text"}))
		}},
		{"Input", "Invalid", func(t Theme) string {
			in := components.NewInput(components.InputOptions{Validation: components.ValidationInvalid})
			in.WriteValue("not-an-email")
			return Input(t, in)
		}},
		{"PasswordInput", "Visible", func(t Theme) string {
			p := components.NewPasswordInput(components.PasswordInputOptions{Visible: true})
			p.WriteValue("hunter22")
			return PasswordInput(t, p)
		}},
		{"Alert", "Variants", func(t Theme) string {
			var col []string
			for _, v := range []components.AlertVariant{
				components.AlertVariantSuccess,
				components.AlertVariantDanger,
				components.AlertVariantWarning,
				components.AlertVariantInfo,
			} {
				col = append(col, Alert(t, components.NewAlert("A simple "+string(v)+" alert", components.AlertOptions{Variant: v, Dismissible: true})))
			}
			return lipgloss.JoinVertical(lipgloss.Left, col...)
		}},
		{"Badge", "Colors", func(t Theme) string {
			var row []string
			for _, c := range []components.Color{components.ColorPrimary, components.ColorSuccess, components.ColorDanger, components.ColorWarning} {
				row = append(row, Badge(t, components.NewBadge(string(c)).WithColor(c)))
			}
			row = append(row, Badge(t, components.NewBadge("").WithType(components.BadgeTypeDot).WithColor(components.ColorDanger)))
			return strings.Join(row, " ")
		}},
		{"Spinner", "Types", func(t Theme) string {
			return Spinner(t, components.NewSpinner()) + " " + Spinner(t, &components.Spinner{Type: components.SpinnerTypeGrowing, Color: components.ColorPrimary})
		}},
		{"Progress", "Multiple", func(t Theme) string {
			p := &components.Progress{Multiple: []components.ProgressBar{
				{Value: 15, Color: components.ColorDefault},
				{Value: 30, Color: components.ColorSuccess},
				{Value: 20, Color: components.ColorInfo},
			}}
			return Progress(t, p, 30)
		}},
		{"Modal", "Default", func(t Theme) string {
			m := components.NewModal("Modal Title")
			m.Open()
			return Modal(t, m, "Modal body text goes here.")
		}},
		{"Navbar", "Expanded", func(t Theme) string {
			n := components.NewNavbar("Navbar")
			n.SetExpanded(true)
			return Navbar(t, n, []string{"Home", "Features", "Pricing"})
		}},
		{"Dropdown", "Open", func(t Theme) string {
			d := components.NewDropdown("Actions", []components.MenuItem{{Label: "Edit"}, {Label: "Duplicate"}, {Label: "Delete", Disabled: true}}, components.DropdownOptions{})
			d.Toggle()
			return Dropdown(t, d)
		}},
		{"Pagination", "Middle", func(t Theme) string {
			return Pagination(t, pagination.NewPager(5, 10))
		}},
		{"LoginPage", "Errors", func(t Theme) string {
			f := components.NewLoginForm()
			f.Submit()
			return LoginForm(t, f)
		}},
	}
}

// RenderAll renders every story under a heading.
func RenderAll(theme Theme) string {
	heading := Style(theme, lipgloss.NewStyle().Bold(true), Foreground(components.ColorPrimary))
	var blocks []string
	for _, s := range Stories() {
		blocks = append(blocks, heading.Render(s.Title())+"\n"+s.Render(theme))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func spaced(items []string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, item)
	}
	return out
}
