// Package tui is the interactive component storybook.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/madergk/biods/internal/pagination"
	"github.com/madergk/biods/internal/preview"
)

type entryKind int

const (
	entryStatic entryKind = iota
	entryPagination
	entrySpinner
	entryProgress
)

type entry struct {
	title string
	kind  entryKind
	story preview.Story
}

// progressTickMsg advances the progress story.
type progressTickMsg struct{}

const progressInterval = 150 * time.Millisecond

// DefaultPageCount is the page count of the pagination story.
const DefaultPageCount = 10

// Model contains the Bubbletea state for the storybook.
type Model struct {
	theme    preview.Theme
	entries  []entry
	cursor   int
	pager    *pagination.Pager
	status   string
	spinner  spinner.Model
	progress progress.Model
	percent  float64
	quitting bool
}

// NewModel builds the storybook over the static catalog plus the interactive
// pagination, spinner and progress stories.
func NewModel(theme preview.Theme) Model {
	pager := pagination.NewPager(1, DefaultPageCount).WithTotalItems(DefaultPageCount * 10)
	pager.OnPageChange(func(page int) {
		pager.SetState(page, pager.Total())
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	entries := []entry{
		{title: "Pagination / Interactive", kind: entryPagination},
		{title: "Spinner / Animated", kind: entrySpinner},
		{title: "Progress / Animated", kind: entryProgress},
	}
	for _, s := range preview.Stories() {
		entries = append(entries, entry{title: s.Title(), kind: entryStatic, story: s})
	}

	return Model{
		theme:    theme,
		entries:  entries,
		pager:    pager,
		spinner:  s,
		progress: bar,
	}
}

// Init starts the spinner and progress animations.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, progressTick())
}

func progressTick() tea.Cmd {
	return tea.Tick(progressInterval, func(time.Time) tea.Msg { return progressTickMsg{} })
}

// Selected returns the title of the highlighted story.
func (m Model) Selected() string {
	return m.entries[m.cursor].title
}

// Page returns the current page of the pagination story.
func (m Model) Page() int {
	return m.pager.Current()
}

// Percent returns the progress story completion in 0..1.
func (m Model) Percent() float64 {
	return m.percent
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the storybook on the terminal and blocks until it exits.
func Run(theme preview.Theme, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(theme), opts...).Run()
	return err
}
