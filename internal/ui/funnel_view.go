package ui

import (
	"math"
	"strconv"
	"strings"
	"time"

	"sudreview/internal/funnel"
	"sudreview/internal/motion"
	"sudreview/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	funnelStageWidth = 52
	connectorRows    = 2
)

// FunnelView draws the study-selection funnel. The reveal starts the first
// time the funnel scrolls into view and runs once; the numbers themselves
// are always present.
type FunnelView struct {
	Flow funnel.Flow

	cues     []motion.Cue
	timeline *motion.Timeline
}

// NewFunnelView schedules the reveal at the given pace (0 = no animation).
func NewFunnelView(flow funnel.Flow, pace float64, fps int) *FunnelView {
	return &FunnelView{Flow: flow, cues: funnel.Schedule(pace, fps)}
}

// Start begins the reveal at now. Later calls do nothing.
func (f *FunnelView) Start(now time.Time) {
	if f.timeline == nil {
		f.timeline = motion.NewTimeline(now, f.cues...)
	}
}

// Started reports whether the reveal has begun.
func (f *FunnelView) Started() bool {
	return f.timeline != nil
}

// Advance moves the reveal to now.
func (f *FunnelView) Advance(now time.Time) {
	if f.timeline != nil {
		f.timeline.Advance(now)
	}
}

// Animating reports whether the reveal is in flight.
func (f *FunnelView) Animating() bool {
	return f.timeline != nil && !f.timeline.Settled()
}

func (f *FunnelView) style(name string) motion.Style {
	if f.timeline != nil {
		return f.timeline.Style(name)
	}
	for _, c := range f.cues {
		if c.Name == name {
			return c.Anim.At(0).Clamped()
		}
	}
	return motion.Visible
}

// View renders the funnel centred in width columns.
func (f *FunnelView) View(width int) string {
	stageWidth := min(funnelStageWidth, max(width, 24))
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	identified := f.stage(stageWidth, f.style(funnel.CueIdentified), true,
		strconv.Itoa(f.Flow.Identified), "Records Identified", f.Flow.IdentifiedSource)
	screening := f.stage(stageWidth, f.style(funnel.CueScreening), false,
		"", f.Flow.ScreeningLabel, f.Flow.ScreeningNote)
	included := f.stage(stageWidth, f.style(funnel.CueIncluded), true,
		strconv.Itoa(f.Flow.Included), "Studies Included", "Final synthesis")

	rows := []string{
		center(identified),
		center(connector(f.style(funnel.CueConnector1))),
		center(screening),
		center(connector(f.style(funnel.CueConnector2))),
		center(included),
		"",
		center(f.summary(stageWidth)),
	}
	return strings.Join(rows, "\n")
}

// stage draws one funnel box. Scale narrows the box; a box below the
// visibility threshold keeps its footprint but draws nothing.
func (f *FunnelView) stage(width int, st motion.Style, accent bool, figure, label, note string) string {
	pal := Faded(st.Opacity)
	box := pal.Box
	if accent {
		box = pal.BoxAccent
	}
	w := int(math.Round(float64(width) * math.Min(st.Scale, 1)))
	w = max(w, 8)
	inner := w - 4

	var lines []string
	if figure != "" {
		lines = append(lines, pal.Title.Render(figure)+" "+pal.Heading.Render(label))
	} else {
		lines = append(lines, pal.Heading.Render(label))
	}
	lines = append(lines, pal.Muted.Render(strings.Join(truncateWrap(note, inner, 2), "\n")))

	block := box.Width(w - 2).Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, strings.Join(lines, "\n")))
	if st.Opacity < invisibleOpacity {
		return blankBlock(block)
	}
	return block
}

// connector draws a vertical line grown to st.Scale of its full length.
func connector(st motion.Style) string {
	shown := int(math.Round(connectorRows * math.Max(0, math.Min(st.Scale, 1))))
	rows := make([]string, connectorRows)
	for i := range rows {
		if i < shown {
			rows[i] = Styles.Dim.Render("│")
		} else {
			rows[i] = " "
		}
	}
	return strings.Join(rows, "\n")
}

// summary is the two-cell row under the funnel.
func (f *FunnelView) summary(width int) string {
	cellWidth := (width - 1) / 2
	cell := func(label, value string) string {
		return Styles.Box.Width(cellWidth - 2).Align(lipgloss.Center).Render(
			Styles.Muted.Render(label) + "\n" + Styles.Title.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Excluded", strconv.Itoa(f.Flow.Excluded())),
		" ",
		cell("Retained", f.Flow.RetentionLabel()),
	)
}

// truncateWrap wraps s to width and keeps at most n lines, padding short
// results so every stage has the same height.
func truncateWrap(s string, width, n int) []string {
	lines := textutil.Wrap(s, width)
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
