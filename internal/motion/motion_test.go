package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 4, 25, 9, 0, 0, 0, time.UTC)

const transition = 300 * time.Millisecond

func newPresence(key string) *Presence[string] {
	return NewPresence(key, t0, DefaultEnter(transition), DefaultExit(transition))
}

func TestTween_At(t *testing.T) {
	tw := Tween{
		From:     Style{Opacity: 0},
		To:       Style{Opacity: 1},
		Delay:    100 * time.Millisecond,
		Duration: 200 * time.Millisecond,
	}

	assert.Equal(t, 0.0, tw.At(0).Opacity)
	assert.Equal(t, 0.0, tw.At(100*time.Millisecond).Opacity)
	assert.InDelta(t, 0.5, tw.At(200*time.Millisecond).Opacity, 1e-9)
	assert.Equal(t, 1.0, tw.At(300*time.Millisecond).Opacity)
	assert.Equal(t, 1.0, tw.At(time.Hour).Opacity)

	assert.False(t, tw.Settled(299*time.Millisecond))
	assert.True(t, tw.Settled(300*time.Millisecond))
}

func TestTween_ZeroDurationIsInstant(t *testing.T) {
	tw := Tween{From: Style{}, To: Visible}
	assert.Equal(t, Visible, tw.At(0))
	assert.True(t, tw.Settled(0))
}

func TestEasing_Endpoints(t *testing.T) {
	for name, ease := range map[string]Easing{
		"linear":     Linear,
		"outCubic":   EaseOutCubic,
		"inOutCubic": EaseInOutCubic,
	} {
		assert.InDelta(t, 0, ease(0), 1e-9, name)
		assert.InDelta(t, 1, ease(1), 1e-9, name)
	}
	assert.Greater(t, EaseOutCubic(0.5), 0.5)
}

func TestStyle_Clamped(t *testing.T) {
	s := Style{Opacity: 1.2, Scale: -0.1, OffsetY: -3.4}.Clamped()
	assert.Equal(t, 1.0, s.Opacity)
	assert.Equal(t, 0.0, s.Scale)
	assert.Equal(t, -3, s.Rows())
}

func TestSpring_ApproachesTarget(t *testing.T) {
	sp := DefaultSpring(Style{Opacity: 0, Scale: 0.9}, Visible, time.Second, 60)

	assert.Equal(t, 0.9, sp.At(500*time.Millisecond).Scale)
	assert.False(t, sp.Settled(500*time.Millisecond))
	assert.False(t, sp.Settled(time.Second))

	mid := sp.At(time.Second + 100*time.Millisecond)
	assert.Greater(t, mid.Opacity, 0.0)

	late := sp.At(4 * time.Second)
	assert.InDelta(t, 1.0, late.Scale, 0.01)
	assert.True(t, sp.Settled(time.Second+maxSpringTime))
}

func TestPresence_InitialMountEnters(t *testing.T) {
	p := newPresence("AUDIT")

	require.Equal(t, []string{"AUDIT"}, p.Mounted())
	f := p.Frames()[0]
	assert.Equal(t, Entering, f.Phase)
	assert.Equal(t, 0.0, f.Style.Opacity)
	assert.True(t, p.Animating())

	p.Advance(t0.Add(transition))
	f = p.Frames()[0]
	assert.Equal(t, Steady, f.Phase)
	assert.Equal(t, Visible, f.Style)
	assert.False(t, p.Animating())
}

func TestPresence_KeyChangeOverlapsThenUnmounts(t *testing.T) {
	p := newPresence("A")
	p.Advance(t0.Add(time.Second))

	changed := p.Set("B", t0.Add(time.Second))
	require.True(t, changed)
	assert.Equal(t, "B", p.Key())

	frames := p.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "A", frames[0].Key)
	assert.Equal(t, Exiting, frames[0].Phase)
	assert.Equal(t, 1.0, frames[0].Style.Opacity)
	assert.Equal(t, "B", frames[1].Key)
	assert.Equal(t, Entering, frames[1].Phase)
	assert.Equal(t, 0.0, frames[1].Style.Opacity)

	p.Advance(t0.Add(time.Second + transition/2))
	frames = p.Frames()
	require.Len(t, frames, 2)
	assert.Less(t, frames[0].Style.Opacity, 1.0)
	assert.Greater(t, frames[1].Style.Opacity, 0.0)

	p.Advance(t0.Add(time.Second + transition))
	assert.Equal(t, []string{"B"}, p.Mounted())
	assert.False(t, p.Animating())
}

func TestPresence_SameKeyIsNoop(t *testing.T) {
	p := newPresence("A")
	p.Advance(t0.Add(time.Second))
	before := p.Frames()

	assert.False(t, p.Set("A", t0.Add(time.Second)))
	assert.Equal(t, before, p.Frames())
}

func TestPresence_RapidSelectionSettlesOnLast(t *testing.T) {
	p := newPresence("A")
	p.Advance(t0.Add(time.Second))

	now := t0.Add(time.Second)
	p.Set("B", now)
	p.Set("C", now)

	mounted := p.Mounted()
	assert.LessOrEqual(t, len(mounted), 2)
	assert.NotContains(t, mounted, "A")
	assert.Equal(t, "C", p.Key())

	p.Advance(now.Add(transition))
	assert.Equal(t, []string{"C"}, p.Mounted())
}

func TestPresence_InterruptedEnterExitsFromCurrentStyle(t *testing.T) {
	p := newPresence("A")
	mid := t0.Add(transition / 2)
	p.Advance(mid)
	partial := p.Frames()[0].Style.Opacity
	require.Greater(t, partial, 0.0)
	require.Less(t, partial, 1.0)

	p.Set("B", mid)
	out := p.Frames()[0]
	assert.Equal(t, "A", out.Key)
	assert.InDelta(t, partial, out.Style.Opacity, 1e-9)
}

func TestPresence_NeverTwoOpaqueChildrenWhenSteady(t *testing.T) {
	p := newPresence("A")
	now := t0
	for i, key := range []string{"B", "C", "D", "B"} {
		now = now.Add(time.Duration(i*50) * time.Millisecond)
		p.Set(key, now)
	}
	p.Advance(now.Add(transition))

	opaque := 0
	for _, f := range p.Frames() {
		if f.Style.Opacity >= 1 {
			opaque++
		}
	}
	assert.Equal(t, 1, opaque)
}

func TestPresence_ZeroDurationIsImmediate(t *testing.T) {
	p := NewPresence("A", t0, DefaultEnter(0), DefaultExit(0))
	assert.False(t, p.Animating())

	p.Set("B", t0)
	assert.Equal(t, []string{"B"}, p.Mounted())
	assert.Equal(t, Visible, p.Frames()[0].Style)
}

func TestPresence_ClockNeverMovesBackwards(t *testing.T) {
	p := newPresence("A")
	p.Advance(t0.Add(transition))
	p.Advance(t0)
	assert.Equal(t, Steady, p.Frames()[0].Phase)
}

func TestTimeline_StaggeredCues(t *testing.T) {
	tl := NewTimeline(t0,
		Cue{Name: "first", Anim: Tween{From: Style{}, To: Visible}},
		Cue{Name: "second", Anim: Tween{From: Style{}, To: Visible, Delay: 500 * time.Millisecond, Duration: time.Second}},
	)

	assert.Equal(t, Visible, tl.Style("first"))
	assert.Equal(t, 0.0, tl.Style("second").Opacity)
	assert.False(t, tl.Settled())

	tl.Advance(t0.Add(time.Second))
	assert.InDelta(t, 0.5, tl.Style("second").Opacity, 1e-9)

	tl.Advance(t0.Add(1500 * time.Millisecond))
	assert.True(t, tl.Settled())

	tl.Restart(t0.Add(time.Hour))
	assert.False(t, tl.Settled())
	assert.Panics(t, func() { tl.Style("missing") })
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "entering", Entering.String())
	assert.Equal(t, "unmounted", Unmounted.String())
}
