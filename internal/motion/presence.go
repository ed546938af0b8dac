package motion

import "time"

// Phase is the lifecycle state of a keyed child.
type Phase int

const (
	Entering Phase = iota
	Steady
	Exiting
	Unmounted
)

func (p Phase) String() string {
	switch p {
	case Entering:
		return "entering"
	case Steady:
		return "steady"
	case Exiting:
		return "exiting"
	case Unmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// Frame is one mounted child as it should be drawn now.
type Frame[K comparable] struct {
	Key   K
	Phase Phase
	Style Style
}

type presenceChild[K comparable] struct {
	key   K
	phase Phase
	start time.Time
	anim  Tween
}

func (c *presenceChild[K]) style(now time.Time) Style {
	return c.anim.At(now.Sub(c.start)).Clamped()
}

// Presence keeps exactly one active child and, during a key change, the
// outgoing child it replaces. Enter and exit run at the same time; the
// outgoing child is unmounted once its exit settles.
//
// Changing the key again mid-transition drops the older outgoing child
// immediately and exits the interrupted child from its current style, so at
// most two children are ever mounted.
type Presence[K comparable] struct {
	Enter Tween
	Exit  Tween

	now      time.Time
	current  *presenceChild[K]
	outgoing *presenceChild[K]
}

// DefaultEnter fades in while rising two rows.
func DefaultEnter(d time.Duration) Tween {
	return Tween{
		From:     Style{Opacity: 0, OffsetY: 2, Scale: 1},
		To:       Visible,
		Duration: d,
		Ease:     EaseOutCubic,
	}
}

// DefaultExit fades out while rising two rows.
func DefaultExit(d time.Duration) Tween {
	return Tween{
		From:     Visible,
		To:       Style{Opacity: 0, OffsetY: -2, Scale: 1},
		Duration: d,
		Ease:     EaseInOutCubic,
	}
}

// NewPresence mounts key at now and starts its enter transition.
func NewPresence[K comparable](key K, now time.Time, enter, exit Tween) *Presence[K] {
	p := &Presence[K]{Enter: enter, Exit: exit, now: now}
	p.current = &presenceChild[K]{key: key, phase: Entering, start: now, anim: enter}
	p.Advance(now)
	return p
}

// Key returns the active key.
func (p *Presence[K]) Key() K {
	return p.current.key
}

// Set makes key the active child. It returns false, and changes nothing, if
// key is already active.
func (p *Presence[K]) Set(key K, now time.Time) bool {
	if now.After(p.now) {
		p.now = now
	}
	if key == p.current.key {
		return false
	}
	prev := p.current
	p.outgoing = &presenceChild[K]{
		key:   prev.key,
		phase: Exiting,
		start: p.now,
		anim:  p.Exit.Starting(prev.style(p.now)),
	}
	p.current = &presenceChild[K]{key: key, phase: Entering, start: p.now, anim: p.Enter}
	p.Advance(p.now)
	return true
}

// Advance moves the clock to now and settles finished transitions.
// Time never moves backwards.
func (p *Presence[K]) Advance(now time.Time) {
	if now.After(p.now) {
		p.now = now
	}
	if p.current.phase == Entering && p.current.anim.Settled(p.now.Sub(p.current.start)) {
		p.current.phase = Steady
	}
	if p.outgoing != nil && p.outgoing.anim.Settled(p.now.Sub(p.outgoing.start)) {
		p.outgoing.phase = Unmounted
		p.outgoing = nil
	}
}

// Animating reports whether any transition is still in flight.
func (p *Presence[K]) Animating() bool {
	return p.current.phase == Entering || p.outgoing != nil
}

// Frames returns the mounted children, outgoing first.
func (p *Presence[K]) Frames() []Frame[K] {
	frames := make([]Frame[K], 0, 2)
	if p.outgoing != nil {
		frames = append(frames, Frame[K]{Key: p.outgoing.key, Phase: Exiting, Style: p.outgoing.style(p.now)})
	}
	frames = append(frames, Frame[K]{Key: p.current.key, Phase: p.current.phase, Style: p.current.style(p.now)})
	return frames
}

// Mounted returns the keys of all mounted children, outgoing first.
func (p *Presence[K]) Mounted() []K {
	var keys []K
	for _, f := range p.Frames() {
		keys = append(keys, f.Key)
	}
	return keys
}
