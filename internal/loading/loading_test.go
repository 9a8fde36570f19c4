package loading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReaches100(t *testing.T) {
	s := DefaultSettings()
	p := New(s)
	ticks := 0
	for !p.Done() {
		p = p.Advance()
		ticks++
		require.LessOrEqual(t, ticks, 1000)
	}
	assert.Equal(t, 100, p.Percent)
	assert.Equal(t, s.Ticks(), ticks)
	assert.Equal(t, 50, ticks)
	assert.Equal(t, 50%8, p.Phase)
}

func TestDefaultDuration(t *testing.T) {
	assert.Equal(t, 13*time.Second, DefaultSettings().Duration())
}

func TestAdvanceClampsAndStops(t *testing.T) {
	p := New(Settings{Interval: time.Millisecond, Step: 30, Phases: 8})
	for range 4 {
		p = p.Advance()
	}
	assert.Equal(t, 100, p.Percent)
	phase := p.Phase

	p = p.Advance()
	assert.Equal(t, 100, p.Percent)
	assert.Equal(t, phase, p.Phase)
}

func TestPhaseWraps(t *testing.T) {
	p := New(DefaultSettings())
	for range 8 {
		p = p.Advance()
	}
	assert.Equal(t, 0, p.Phase)
	assert.Equal(t, 16, p.Percent)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		ok   bool
	}{
		{"defaults", DefaultSettings(), true},
		{"zero interval", Settings{Step: 2, Phases: 8}, false},
		{"zero step", Settings{Interval: time.Second, Phases: 8}, false},
		{"huge step", Settings{Interval: time.Second, Step: 101, Phases: 8}, false},
		{"negative settle", Settings{Interval: time.Second, Step: 2, Phases: 8, Settle: -1}, false},
		{"no phases", Settings{Interval: time.Second, Step: 2}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidSettings)
			}
		})
	}
}

func TestMoonGlyph(t *testing.T) {
	assert.Equal(t, "🌑", MoonGlyph(0))
	assert.Equal(t, "🌕", MoonGlyph(4))
	assert.Equal(t, "🌑", MoonGlyph(8))
	assert.Equal(t, "🌘", MoonGlyph(-1))
	assert.Equal(t, "Full Moon", PhaseName(4))
}

func TestStarfieldDeterministic(t *testing.T) {
	a := Starfield(7, 80, 24, 100)
	b := Starfield(7, 80, 24, 100)
	require.Len(t, a, 100)
	assert.Equal(t, a, b)
	for _, s := range a {
		assert.True(t, s.X >= 0 && s.X < 80 && s.Y >= 0 && s.Y < 24)
	}
	assert.Nil(t, Starfield(7, 0, 24, 10))
}
