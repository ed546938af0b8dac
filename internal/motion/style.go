// Package motion is a small declarative animation layer for terminal views.
//
// An Animation maps elapsed time to a Style (opacity, vertical offset, scale).
// Tween and Spring are the two animation kinds. Presence sequences keyed
// enter/exit transitions for a single active child, and Timeline staggers a
// fixed set of named cues from a common start time. Nothing here owns a timer:
// callers feed timestamps in through Advance, typically from frame messages.
package motion

import (
	"math"
	"time"
)

// Style is the set of animatable visual properties.
type Style struct {
	Opacity float64 // 0 = invisible, 1 = fully opaque
	OffsetY float64 // rows; negative moves up
	Scale   float64 // 1 = natural size
}

// Visible is the resting style of a fully shown element.
var Visible = Style{Opacity: 1, Scale: 1}

// Lerp interpolates between a and b. t is not clamped so springs may overshoot.
func Lerp(a, b Style, t float64) Style {
	return Style{
		Opacity: a.Opacity + (b.Opacity-a.Opacity)*t,
		OffsetY: a.OffsetY + (b.OffsetY-a.OffsetY)*t,
		Scale:   a.Scale + (b.Scale-a.Scale)*t,
	}
}

// Clamped returns s with opacity limited to [0, 1] and scale to >= 0.
func (s Style) Clamped() Style {
	s.Opacity = math.Max(0, math.Min(1, s.Opacity))
	s.Scale = math.Max(0, s.Scale)
	return s
}

// Rows returns the vertical offset rounded to whole terminal rows.
func (s Style) Rows() int {
	return int(math.Round(s.OffsetY))
}

// Animation maps time since the animation was started to a style.
type Animation interface {
	At(elapsed time.Duration) Style
	Settled(elapsed time.Duration) bool
}

// Clock is the time source used when a component mounts.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (with its monotonic reading).
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
