package tui

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/dependencies/clock"
)

// softDrop turns the stream of down-key repeats a terminal sends into one
// accelerate begin and one accelerate end. Acceleration ends once no down
// key has arrived for the hold window.
type softDrop struct {
	clock  clock.Clock
	hold   time.Duration
	last   time.Time
	active bool
}

func newSoftDrop(clk clock.Clock, hold time.Duration) *softDrop {
	return &softDrop{clock: clk, hold: hold}
}

// press records a down key. The first press of a run emits the begin.
func (s *softDrop) press(frame *core.InputFrame) {
	s.last = s.clock.Now()
	if s.active {
		return
	}
	s.active = true
	frame.Set(core.ActionAccelerateBegin)
}

// expire emits the end when the hold window has passed.
func (s *softDrop) expire(frame *core.InputFrame) {
	if !s.active || s.clock.Now().Sub(s.last) < s.hold {
		return
	}
	s.active = false
	frame.Set(core.ActionAccelerateEnd)
}

// reset forgets a run without emitting anything. Used when the game resets
// its own speed.
func (s *softDrop) reset() {
	s.active = false
}
