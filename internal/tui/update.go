package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressTickMsg:
		m.percent += 0.05
		if m.percent > 1.0001 {
			m.percent = 0
		}
		return m, progressTick()
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "left", "h", "right", "l", "home", "g", "end", "G":
		if m.entries[m.cursor].kind == entryPagination {
			m.changePage(msg.String())
		}
	}
	return m, nil
}

func (m *Model) changePage(key string) {
	var changed bool
	switch key {
	case "left", "h":
		changed = m.pager.Previous()
	case "right", "l":
		changed = m.pager.Next()
	case "home", "g":
		changed = m.pager.GoTo(1)
	default:
		changed = m.pager.GoTo(m.pager.Total())
	}
	if changed {
		m.status = fmt.Sprintf("page changed → %d", m.pager.Current())
		return
	}
	m.status = "request ignored"
}
