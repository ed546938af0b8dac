package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	springEpsilon = 0.001
	maxSpringTime = 5 * time.Second
)

// Spring drives progress From → To with a damped harmonic oscillator.
// The oscillator is stepped at FPS from the moment Delay elapses, so the
// style at a given elapsed time is deterministic.
type Spring struct {
	From      Style
	To        Style
	Delay     time.Duration
	FPS       int
	Frequency float64 // angular frequency
	Damping   float64 // damping ratio; < 1 overshoots
}

// Ensure Spring implements Animation.
var _ Animation = Spring{}

// DefaultSpring returns a lightly underdamped spring between from and to.
func DefaultSpring(from, to Style, delay time.Duration, fps int) Spring {
	return Spring{From: from, To: to, Delay: delay, FPS: fps, Frequency: 8, Damping: 0.6}
}

func (s Spring) step() time.Duration {
	fps := s.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

func (s Spring) simulate(elapsed time.Duration) (pos, vel float64) {
	fps := s.FPS
	if fps <= 0 {
		fps = 60
	}
	sp := harmonica.NewSpring(harmonica.FPS(fps), s.Frequency, s.Damping)
	steps := int((elapsed - s.Delay) / s.step())
	for range steps {
		pos, vel = sp.Update(pos, vel, 1)
	}
	return pos, vel
}

// At implements Animation.
func (s Spring) At(elapsed time.Duration) Style {
	if elapsed < s.Delay {
		return s.From
	}
	if elapsed >= s.Delay+maxSpringTime {
		return s.To
	}
	pos, _ := s.simulate(elapsed)
	return Lerp(s.From, s.To, pos)
}

// Settled implements Animation.
func (s Spring) Settled(elapsed time.Duration) bool {
	if elapsed < s.Delay {
		return false
	}
	if elapsed >= s.Delay+maxSpringTime {
		return true
	}
	pos, vel := s.simulate(elapsed)
	return math.Abs(1-pos) < springEpsilon && math.Abs(vel) < springEpsilon
}
