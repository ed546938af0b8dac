// Package funnel holds the study-selection flow of the review (identification,
// screening, inclusion) and its staged reveal schedule.
package funnel

import (
	"fmt"
	"math"
	"time"

	"sudreview/internal/motion"
)

// Flow is the three-stage study selection.
type Flow struct {
	Identified       int    // records identified
	IdentifiedSource string // where records came from
	ScreeningLabel   string
	ScreeningNote    string
	Included         int
}

// Review is the review's selection flow.
var Review = Flow{
	Identified:       322,
	IdentifiedSource: "PubMed, Gray Literature, Reference Lists",
	ScreeningLabel:   "Screening & Exclusion",
	ScreeningNote:    "Did not meet criteria for validation in HCH settings",
	Included:         12,
}

// Excluded is the number of records dropped between identification and
// inclusion.
func (f Flow) Excluded() int {
	return f.Identified - f.Included
}

// Retention is the included share of identified records as a percentage,
// rounded to one decimal place.
func (f Flow) Retention() float64 {
	if f.Identified == 0 {
		return 0
	}
	return math.Round(float64(f.Included)/float64(f.Identified)*1000) / 10
}

// RetentionLabel formats Retention for display, e.g. "3.7%".
func (f Flow) RetentionLabel() string {
	return fmt.Sprintf("%.1f%%", f.Retention())
}

// Cue names for the staged reveal.
const (
	CueIdentified = "identified"
	CueConnector1 = "connector-1"
	CueScreening  = "screening"
	CueConnector2 = "connector-2"
	CueIncluded   = "included"
)

// Reveal timing. Pace scales every delay and duration; zero shows the whole
// funnel immediately.
const (
	connector1Delay = 500 * time.Millisecond
	connector2Delay = time.Second
	includedDelay   = 1500 * time.Millisecond
	connectorGrow   = time.Second
	stageFade       = 300 * time.Millisecond
)

// Schedule returns the reveal cues. Stage one is immediate, each connector
// grows over a second, and the included stage springs in last.
func Schedule(pace float64, fps int) []motion.Cue {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * pace)
	}
	hidden := motion.Style{Opacity: 0, Scale: 1}
	collapsed := motion.Style{Opacity: 1, Scale: 0}

	included := motion.Animation(motion.DefaultSpring(
		motion.Style{Opacity: 0, Scale: 0.9}, motion.Visible, scale(includedDelay), fps))
	if pace <= 0 {
		included = motion.Tween{From: motion.Visible, To: motion.Visible}
	}

	return []motion.Cue{
		{Name: CueIdentified, Anim: motion.Tween{From: motion.Visible, To: motion.Visible}},
		{Name: CueConnector1, Anim: motion.Tween{
			From: collapsed, To: motion.Visible,
			Delay: scale(connector1Delay), Duration: scale(connectorGrow), Ease: motion.EaseInOutCubic,
		}},
		{Name: CueScreening, Anim: motion.Tween{
			From: hidden, To: motion.Visible,
			Delay: scale(connector1Delay), Duration: scale(stageFade), Ease: motion.EaseOutCubic,
		}},
		{Name: CueConnector2, Anim: motion.Tween{
			From: collapsed, To: motion.Visible,
			Delay: scale(connector2Delay), Duration: scale(connectorGrow), Ease: motion.EaseInOutCubic,
		}},
		{Name: CueIncluded, Anim: included},
	}
}
