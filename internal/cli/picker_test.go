package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m tea.Model, msg tea.Msg) DocumentListModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(DocumentListModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model
}

func TestPickerCursorSelection(t *testing.T) {
	m := NewDocumentListModel()
	if len(m.Documents) != 4 {
		t.Fatalf("documents = %d, want 4", len(m.Documents))
	}

	// Enter with nothing checked selects the cursor row.
	m = step(t, m, key("down"))
	m = step(t, m, key("enter"))
	if len(m.Selected) != 1 || m.Selected[0].Name != m.Documents[1].Name {
		t.Errorf("selection = %+v, want cursor row", m.Selected)
	}
}

func TestPickerToggle(t *testing.T) {
	m := NewDocumentListModel()
	m = step(t, m, key(" "))
	m = step(t, m, key("down"))
	m = step(t, m, key(" "))
	m = step(t, m, key("enter"))

	if len(m.Selected) != 2 {
		t.Fatalf("selection = %d documents, want 2", len(m.Selected))
	}
}

func TestPickerSelectAll(t *testing.T) {
	m := NewDocumentListModel()
	m = step(t, m, key("a"))
	m = step(t, m, key("enter"))
	if len(m.Selected) != len(m.Documents) {
		t.Errorf("selection = %d, want all %d", len(m.Selected), len(m.Documents))
	}
}

func TestPickerBounds(t *testing.T) {
	m := NewDocumentListModel()
	m = step(t, m, key("k"))
	if m.Cursor != 0 {
		t.Error("cursor should not move above the first row")
	}
	for i := 0; i < 10; i++ {
		m = step(t, m, key("j"))
	}
	if m.Cursor != len(m.Documents)-1 {
		t.Errorf("cursor = %d, should clamp to last row", m.Cursor)
	}
}
