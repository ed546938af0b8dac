package ui

import (
	"strings"

	"sudreview/internal/catalog"
	"sudreview/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Zone titles of the comparison card.
const (
	StrengthsTitle   = "Psychometric Performance"
	LimitationsTitle = "Limitations & HCH Evidence"
	VerdictTitle     = "Review Conclusion for HCH"
)

// TwoColumnMinWidth is the narrowest card that shows strengths and
// limitations side by side.
const TwoColumnMinWidth = 100

// PanelHeader is the top zone of the comparison card.
type PanelHeader struct {
	DisplayName        string
	FullName           string
	AdministrationType string
	TargetSubstance    string
	AdministrationTime string
}

// Panel is everything the comparison card shows for one instrument.
type Panel struct {
	Header      PanelHeader
	Strengths   []string
	Limitations []string
	Verdict     string
	Tone        catalog.Tone
}

// Project builds the panel for id. It has no side effects; an id outside the
// catalog panics.
func Project(c *catalog.Catalog, id catalog.ID) Panel {
	r := c.Get(id)
	return Panel{
		Header: PanelHeader{
			DisplayName:        r.DisplayName,
			FullName:           r.FullName,
			AdministrationType: r.AdministrationType,
			TargetSubstance:    r.TargetSubstance,
			AdministrationTime: r.AdministrationTime,
		},
		Strengths:   r.Strengths,
		Limitations: r.Limitations,
		Verdict:     r.Verdict,
		Tone:        r.Tone,
	}
}

// RenderPanel draws the card width columns wide.
func RenderPanel(p Panel, width int, pal Palette) string {
	// Box: border 2 + padding 2.
	inner := max(width-4, 20)

	var header strings.Builder
	header.WriteString(pal.Title.Render(p.Header.DisplayName))
	header.WriteString("  ")
	header.WriteString(pal.Heading.Render(textutil.Truncate(p.Header.FullName, max(inner-textutil.VisualWidth(p.Header.DisplayName)-2, 1))))
	header.WriteString("\n")
	header.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		pal.Muted.Render(p.Header.AdministrationType),
		" ",
		pal.Chip.Render(p.Header.TargetSubstance),
		" ",
		pal.Badge.Render("⏱ "+p.Header.AdministrationTime),
	))

	var columns string
	if width >= TwoColumnMinWidth {
		colWidth := (inner - 3) / 2
		left := renderZone(StrengthsTitle, p.Strengths, "✓", pal.Positive, pal, colWidth)
		right := renderZone(LimitationsTitle, p.Limitations, "•", pal.Negative, pal, colWidth)
		columns = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colWidth).Render(left),
			"   ",
			lipgloss.NewStyle().Width(colWidth).Render(right),
		)
	} else {
		columns = renderZone(StrengthsTitle, p.Strengths, "✓", pal.Positive, pal, inner) +
			"\n\n" +
			renderZone(LimitationsTitle, p.Limitations, "•", pal.Negative, pal, inner)
	}

	verdictLines := textutil.Wrap(p.Verdict, inner-2)
	verdict := pal.Tone(p.Tone).Render(
		pal.Heading.Render(VerdictTitle) + "\n" + pal.Normal.Render(strings.Join(verdictLines, "\n")))

	body := header.String() + "\n\n" + columns + "\n\n" + verdict
	return pal.Box.Width(width - 2).Render(body)
}

// renderZone draws a titled bullet list with hanging indents.
func renderZone(title string, items []string, mark string, markStyle lipgloss.Style, pal Palette, width int) string {
	var b strings.Builder
	b.WriteString(pal.Heading.Render(title))
	for _, item := range items {
		for i, line := range textutil.Wrap(item, width-2) {
			b.WriteString("\n")
			if i == 0 {
				b.WriteString(markStyle.Render(mark) + " ")
			} else {
				b.WriteString("  ")
			}
			b.WriteString(pal.Normal.Render(line))
		}
	}
	return b.String()
}
