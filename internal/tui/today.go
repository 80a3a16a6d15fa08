// Package tui implements the interactive daily check-off screen.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tallyhq/tally/internal/models"
)

// Item is one habit row with its pending checked state.
type Item struct {
	Habit   models.Habit
	Checked bool
}

func (i Item) Title() string {
	marker := "○"
	if i.Checked {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Name)
}

func (i Item) Description() string {
	if i.Checked {
		return "done today"
	}
	return "not done yet"
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "submit day"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit without submitting"),
		),
	}
}

// Model is the bubbletea model for one day's check-off session.
type Model struct {
	list      list.Model
	keys      KeyMap
	date      string
	submitted bool
}

func NewModel(date string, habits []models.Habit) Model {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}

	keys := DefaultKeyMap()

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = titleStyle.Render("Daily habits · " + date)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Submit, keys.Quit}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Submit, keys.Quit}
	}

	return Model{
		list: l,
		keys: keys,
		date: date,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.list.SelectedItem().(Item); ok {
				item.Checked = !item.Checked
				return m, m.list.SetItem(m.list.Index(), item)
			}
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	view := docStyle.Render(m.list.View())
	done := 0
	for _, it := range m.list.Items() {
		if item, ok := it.(Item); ok && item.Checked {
			done++
		}
	}
	status := doneStyle.Render(fmt.Sprintf("  %d/%d done", done, len(m.list.Items())))
	hint := hintStyle.Render("  submitting locks in today's entries")
	return view + "\n" + status + "\n" + hint + "\n"
}

// Checks returns the final checked state of every habit, in list order.
func (m Model) Checks() []models.HabitCheck {
	checks := make([]models.HabitCheck, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if item, ok := it.(Item); ok {
			checks = append(checks, models.HabitCheck{
				HabitID:   item.Habit.ID,
				Completed: item.Checked,
			})
		}
	}
	return checks
}

// Submitted reports whether the user confirmed the day.
func (m Model) Submitted() bool {
	return m.submitted
}

// RunToday runs the check-off screen and returns the confirmed checks.
// submitted is false when the user quit without confirming.
func RunToday(date string, habits []models.Habit) (checks []models.HabitCheck, submitted bool, err error) {
	p := tea.NewProgram(NewModel(date, habits), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := final.(Model)
	if !ok {
		return nil, false, fmt.Errorf("unexpected model type from tea program")
	}

	return m.Checks(), m.Submitted(), nil
}
