package motion

import (
	"fmt"
	"time"
)

// Cue is a named animation on a Timeline.
type Cue struct {
	Name string
	Anim Animation
}

// Timeline runs a fixed set of cues from a shared start time. Cues carry
// their own delays, which is how staggered reveals are expressed.
type Timeline struct {
	start time.Time
	now   time.Time
	cues  []Cue
}

// NewTimeline starts all cues at start.
func NewTimeline(start time.Time, cues ...Cue) *Timeline {
	return &Timeline{start: start, now: start, cues: cues}
}

// Advance moves the timeline clock to now. Time never moves backwards.
func (t *Timeline) Advance(now time.Time) {
	if now.After(t.now) {
		t.now = now
	}
}

// Restart replays every cue from now.
func (t *Timeline) Restart(now time.Time) {
	t.start = now
	t.now = now
}

// Elapsed returns the time since the timeline started.
func (t *Timeline) Elapsed() time.Duration {
	return t.now.Sub(t.start)
}

// Style returns the current style of the named cue. Unknown names panic.
func (t *Timeline) Style(name string) Style {
	for _, c := range t.cues {
		if c.Name == name {
			return c.Anim.At(t.Elapsed()).Clamped()
		}
	}
	panic(fmt.Sprintf("motion: no cue %q", name))
}

// Settled reports whether every cue has finished.
func (t *Timeline) Settled() bool {
	for _, c := range t.cues {
		if !c.Anim.Settled(t.Elapsed()) {
			return false
		}
	}
	return true
}
