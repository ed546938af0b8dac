package ui

import (
	"strings"

	"sudreview/internal/content"
	"sudreview/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Fixed chrome rows around the document.
const (
	navHeight    = 1
	statusHeight = 1
)

// renderNav draws the top bar. It is transparent over the hero and turns
// into a solid compact bar once the page has scrolled.
func renderNav(width int, scrolled bool, active string) string {
	var links []string
	for _, s := range content.Sections() {
		if s.ID == active {
			links = append(links, Styles.Title.Render(s.Label))
		} else {
			links = append(links, Styles.Muted.Render(s.Label))
		}
	}
	right := strings.Join(links, "  ") + "  " + Styles.Dim.Render("m menu")

	if !scrolled {
		left := Styles.Muted.Render(" " + content.Brand)
		gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
		return clipWidth(left+strings.Repeat(" ", gap)+right, width)
	}

	brand := Styles.NavSolid.Foreground(lipgloss.Color(ColorAccent)).Render(" " + content.Brand + " ")
	gap := max(width-lipgloss.Width(brand)-lipgloss.Width(right)-1, 1)
	bar := brand + Styles.NavSolid.Render(strings.Repeat(" ", gap)) + right
	return Styles.NavSolid.Width(width).Render(clipWidth(bar, width))
}

// renderStatus draws the help line with the toast on the right.
func renderStatus(width int, keyMap help.KeyMap, toast *Toast) string {
	h := newHelpModel()
	left := " " + h.ShortHelpView(keyMap.ShortHelp())
	right := toast.View()
	if right == "" {
		return clipWidth(left, width)
	}
	avail := width - lipgloss.Width(right) - 1
	if avail < 8 {
		return clipWidth(right, width)
	}
	left = clipWidth(left, avail)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// clipWidth truncates a possibly styled line to width columns.
func clipWidth(s string, width int) string {
	if textutil.VisualWidthStyled(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
