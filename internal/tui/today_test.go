package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tallyhq/tally/internal/models"
)

func testHabits() []models.Habit {
	return []models.Habit{
		{ID: 1, Name: "Read", UserID: 1},
		{ID: 2, Name: "Run", UserID: 1},
		{ID: 3, Name: "Meditate", UserID: 1},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsUnchecked(t *testing.T) {
	m := NewModel("2025-03-01", testHabits())

	checks := m.Checks()
	if len(checks) != 3 {
		t.Fatalf("got %d checks, want 3", len(checks))
	}
	for _, c := range checks {
		if c.Completed {
			t.Errorf("habit %d starts checked, want unchecked", c.HabitID)
		}
	}
	if m.Submitted() {
		t.Error("new model reports submitted")
	}
}

func TestToggleCurrentHabit(t *testing.T) {
	m := NewModel("2025-03-01", testHabits())

	next, _ := m.Update(keyMsg("x"))
	m = next.(Model)

	checks := m.Checks()
	if !checks[0].Completed {
		t.Error("first habit not checked after toggle")
	}
	if checks[1].Completed || checks[2].Completed {
		t.Error("toggle affected habits other than the selected one")
	}

	// Toggling again unchecks.
	next, _ = m.Update(keyMsg("x"))
	m = next.(Model)
	if m.Checks()[0].Completed {
		t.Error("first habit still checked after second toggle")
	}
}

func TestSubmitQuitsAndMarksSubmitted(t *testing.T) {
	m := NewModel("2025-03-01", testHabits())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.Submitted() {
		t.Error("model not submitted after enter")
	}
	if cmd == nil {
		t.Fatal("submit returned no command, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("submit command is not tea.Quit")
	}
}

func TestQuitWithoutSubmitting(t *testing.T) {
	m := NewModel("2025-03-01", testHabits())

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)

	if m.Submitted() {
		t.Error("quit marked the model as submitted")
	}
	if cmd == nil {
		t.Fatal("quit returned no command, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
}

func TestItemTitleMarkers(t *testing.T) {
	unchecked := Item{Habit: models.Habit{Name: "Read"}}
	if got := unchecked.Title(); got != "○ Read" {
		t.Errorf("unchecked Title = %q", got)
	}

	checked := Item{Habit: models.Habit{Name: "Read"}, Checked: true}
	if got := checked.Title(); got != "✓ Read" {
		t.Errorf("checked Title = %q", got)
	}
}
