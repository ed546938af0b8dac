package ui

import (
	"fmt"
	"strings"

	"sudreview/internal/content"
	"sudreview/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem is one entry of the menu overlay.
type MenuItem struct {
	Label string
	Hint  string
	Msg   tea.Msg
}

// MenuView lists the sections plus the share and print actions. Choosing an
// entry closes the menu, then performs the entry.
type MenuView struct {
	Items    []MenuItem
	Selected int
}

// NewMenuView builds the menu for the document's sections.
func NewMenuView() *MenuView {
	var items []MenuItem
	for _, s := range content.Sections() {
		items = append(items, MenuItem{
			Label: fmt.Sprintf("%02d %s", s.Number, s.Label),
			Hint:  s.Sub,
			Msg:   JumpToSectionMsg{ID: s.ID},
		})
	}
	items = append(items,
		MenuItem{Label: "Key References", Msg: JumpToSectionMsg{ID: AnchorReferences}},
		MenuItem{Label: "Share Link", Hint: "copy to clipboard", Msg: ShareMsg{}},
		MenuItem{Label: "Save as PDF", Hint: "print-ready export", Msg: ExportMsg{}},
	)
	return &MenuView{Items: items}
}

// Init implements View.
func (m *MenuView) Init() tea.Cmd { return nil }

// Update implements View.
func (m *MenuView) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected < len(m.Items) {
			chosen := m.Items[m.Selected].Msg
			return m, tea.Sequence(
				func() tea.Msg { return DismissMenuMsg{} },
				func() tea.Msg { return chosen },
			)
		}
	}
	return m, nil
}

// View implements View.
func (m *MenuView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(content.Brand))
	b.WriteString("\n")
	labelWidth := 0
	for _, item := range m.Items {
		labelWidth = max(labelWidth, textutil.VisualWidth(item.Label))
	}
	for i, item := range m.Items {
		b.WriteString("\n")
		line := textutil.PadRightVisual(item.Label, labelWidth)
		if i == m.Selected {
			b.WriteString(Styles.Selected.Render(line))
		} else {
			b.WriteString(Styles.Normal.Padding(0, 1).Render(line))
		}
		if item.Hint != "" {
			b.WriteString(" " + Styles.Muted.Render(item.Hint))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(Styles.Dim.Render("↑/↓ move • enter choose • esc close"))
	return Styles.BoxAccent.Padding(1, 2).Render(b.String())
}
