package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp draws the box listing the keys that may follow the
// pending leader sequence in region. It is empty unless a sequence is
// pending.
func RenderKeybindHelp(h *KeyHandler, region Region) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	pending := h.Pending()
	bindings := leaderBindings(h.Registry.LeaderHints(pending, region))
	if len(bindings) == 0 {
		return ""
	}
	if pending == "" {
		pending = h.LeaderSeq
	}
	body := Styles.Muted.Render(pending) + " " + newHelpModel().ShortHelpView(bindings)
	return Styles.BoxAccent.Render(body)
}

// newHelpModel returns a bubbles help model in the theme colours.
func newHelpModel() help.Model {
	m := help.New()
	m.ShortSeparator = " · "
	m.Styles.ShortKey = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent))
	m.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim))
	return m
}
