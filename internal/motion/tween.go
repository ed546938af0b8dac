package motion

import "time"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseOutCubic decelerates towards the end.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Tween interpolates From → To over Duration after Delay.
type Tween struct {
	From     Style
	To       Style
	Delay    time.Duration
	Duration time.Duration
	Ease     Easing // nil means Linear
}

// Ensure Tween implements Animation.
var _ Animation = Tween{}

// At implements Animation.
func (t Tween) At(elapsed time.Duration) Style {
	if elapsed < t.Delay {
		return t.From
	}
	if t.Duration <= 0 {
		return t.To
	}
	p := float64(elapsed-t.Delay) / float64(t.Duration)
	if p >= 1 {
		return t.To
	}
	ease := t.Ease
	if ease == nil {
		ease = Linear
	}
	return Lerp(t.From, t.To, ease(p))
}

// Settled implements Animation.
func (t Tween) Settled(elapsed time.Duration) bool {
	return elapsed >= t.Delay+t.Duration
}

// Starting returns a copy of t that begins at from instead of t.From.
func (t Tween) Starting(from Style) Tween {
	t.From = from
	return t
}
