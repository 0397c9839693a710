package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/madergk/biods/internal/pagination"
	"github.com/madergk/biods/internal/preview"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("biods • Storybook")
	if m.theme.Source != "" {
		title += hintStyle.Render(fmt.Sprintf("  (theme: %s)", m.theme.Source))
	}

	var list []string
	for i, e := range m.entries {
		if i == m.cursor {
			list = append(list, cursorStyle.Render("› "+e.title))
			continue
		}
		list = append(list, "  "+e.title)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(strings.Join(list, "\n")),
		canvasStyle.Render(m.renderSelected()),
	)

	help := hintStyle.Render("↑/↓ select • ←/→ page • home/end first/last • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (m Model) renderSelected() string {
	e := m.entries[m.cursor]
	heading := sectionStyle.Render(e.title)

	switch e.kind {
	case entryPagination:
		lines := []string{
			heading,
			preview.Pagination(m.theme, m.pager),
			hintStyle.Render(m.pager.Classes()),
			fmt.Sprintf("%s • page %d of %d", m.pager.TotalText(), m.pager.Current(), m.pager.Total()),
			hintStyle.Render(pagination.Format(m.pager.Pages())),
		}
		if m.status != "" {
			lines = append(lines, statusStyle.Render(m.status))
		}
		return strings.Join(lines, "\n")
	case entrySpinner:
		return heading + "\n" + m.spinner.View() + " Loading…"
	case entryProgress:
		return heading + "\n" + m.progress.ViewAs(m.percent)
	default:
		return heading + "\n" + e.story.Render(m.theme)
	}
}
