// Package loading models the splash screen: a percentage counter driven by a
// fixed-interval tick, and the lunar phase shown alongside it.
package loading

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultInterval = 250 * time.Millisecond
	DefaultStep     = 2
	DefaultSettle   = 500 * time.Millisecond
	DefaultPhases   = 8

	complete = 100
)

var ErrInvalidSettings = errors.New("invalid loading settings")

// Settings tune the splash timing.
type Settings struct {
	Interval time.Duration
	Step     int
	Settle   time.Duration
	Phases   int
}

func DefaultSettings() Settings {
	return Settings{
		Interval: DefaultInterval,
		Step:     DefaultStep,
		Settle:   DefaultSettle,
		Phases:   DefaultPhases,
	}
}

func (s Settings) Validate() error {
	switch {
	case s.Interval <= 0:
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidSettings, s.Interval)
	case s.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSettings, s.Step)
	case s.Step > complete:
		return fmt.Errorf("%w: step must be at most %d, got %d", ErrInvalidSettings, complete, s.Step)
	case s.Settle < 0:
		return fmt.Errorf("%w: settle must not be negative, got %s", ErrInvalidSettings, s.Settle)
	case s.Phases <= 0:
		return fmt.Errorf("%w: phases must be positive, got %d", ErrInvalidSettings, s.Phases)
	}
	return nil
}

// Ticks is the number of ticks needed to reach 100%.
func (s Settings) Ticks() int {
	return (complete + s.Step - 1) / s.Step
}

// Duration is the total time from the first tick to completion.
func (s Settings) Duration() time.Duration {
	return time.Duration(s.Ticks())*s.Interval + s.Settle
}

// Progress is an immutable snapshot of the splash counter.
type Progress struct {
	Percent int
	Phase   int

	step   int
	phases int
}

func New(s Settings) Progress {
	return Progress{step: s.Step, phases: s.Phases}
}

// Advance returns the next snapshot. Once complete it no longer changes.
func (p Progress) Advance() Progress {
	if p.Done() {
		return p
	}
	p.Percent += p.step
	if p.Percent > complete {
		p.Percent = complete
	}
	if p.phases > 0 {
		p.Phase = (p.Phase + 1) % p.phases
	}
	return p
}

func (p Progress) Done() bool { return p.Percent >= complete }

var moonGlyphs = [...]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}

// MoonGlyph maps a phase index to new moon, waxing crescent, ... waning crescent.
func MoonGlyph(phase int) string {
	n := len(moonGlyphs)
	return moonGlyphs[((phase%n)+n)%n]
}

// PhaseName is the label for MoonGlyph(phase).
func PhaseName(phase int) string {
	names := [...]string{
		"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
		"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
	}
	n := len(names)
	return names[((phase%n)+n)%n]
}

// Star is one point of the background sky.
type Star struct {
	X, Y   int
	Bright bool
}

// Starfield scatters n stars over a w×h area. The same seed gives the same sky.
func Starfield(seed uint64, w, h, n int) []Star {
	if w <= 0 || h <= 0 || n <= 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{X: r.IntN(w), Y: r.IntN(h), Bright: r.Float64() > 0.7}
	}
	return stars
}
