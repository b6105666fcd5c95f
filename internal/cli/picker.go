package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solprov/tankdesign/pkg/docgen"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// DocumentListModel is the bubbletea model for interactive document
// selection. Space toggles, enter confirms the checked set (or the
// cursor row when nothing is checked).
type DocumentListModel struct {
	Documents []docgen.Document
	Cursor    int
	Checked   map[int]bool
	Selected  []docgen.Document
}

// NewDocumentListModel creates a document list over the registered documents.
func NewDocumentListModel() DocumentListModel {
	return DocumentListModel{
		Documents: docgen.All(),
		Checked:   make(map[int]bool),
	}
}

func (m DocumentListModel) Init() tea.Cmd {
	return nil
}

func (m DocumentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Documents)-1 {
				m.Cursor++
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			for i := range m.Documents {
				m.Checked[i] = true
			}
		case "enter":
			m.Selected = m.selection()
			return m, tea.Quit
		}
	}
	return m, nil
}

// selection returns the checked documents, or the cursor row when
// nothing is checked.
func (m DocumentListModel) selection() []docgen.Document {
	var docs []docgen.Document
	for i, doc := range m.Documents {
		if m.Checked[i] {
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		docs = append(docs, m.Documents[m.Cursor])
	}
	return docs
}

func (m DocumentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Documents"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	for i, doc := range m.Documents {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = "[" + StyleSuccess.Render("✓") + "]"
		}

		line := fmt.Sprintf("%s%s %-42s %s", cursor, check, doc.Title, listDimStyle.Render(doc.Category))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Documents))))

	return b.String()
}

// pickDocuments runs the interactive picker and returns the selection.
// A nil slice means the user quit without confirming.
func pickDocuments() ([]docgen.Document, error) {
	final, err := tea.NewProgram(NewDocumentListModel()).Run()
	if err != nil {
		return nil, err
	}
	model, ok := final.(DocumentListModel)
	if !ok {
		return nil, nil
	}
	return model.Selected, nil
}
