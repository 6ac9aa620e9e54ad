package blocks

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func newTestGame(frame time.Duration) *Game {
	return New(Options{
		Picker:        onlyPicker(PieceO),
		FrameDuration: frame,
	})
}

func TestGameDefaults(t *testing.T) {
	g := New(Options{Seed: 1})
	assert.Equal(t, DefaultNormalInterval, g.Interval())
	assert.Equal(t, DefaultNormalInterval, g.NormalInterval())
	assert.False(t, g.Accelerating())
	assert.Len(t, g.Queue(), QueueSize)
}

func TestAdvanceCarriesRemainder(t *testing.T) {
	g := newTestGame(0)

	assert.Equal(t, 2, g.Advance(500*time.Millisecond))
	assert.Equal(t, SpawnRow+2, g.Active().Row)

	assert.Equal(t, 0, g.Advance(50*time.Millisecond))
	assert.Equal(t, 1, g.Advance(50*time.Millisecond))
	assert.Equal(t, SpawnRow+3, g.Active().Row)
}

func TestAccelerateSwitchesInterval(t *testing.T) {
	g := newTestGame(0)

	g.OnInput(CmdAccelerateBegin)
	assert.True(t, g.Accelerating())
	assert.Equal(t, 50*time.Millisecond, g.Interval())
	assert.Equal(t, 4, g.Advance(200*time.Millisecond))

	g.OnInput(CmdAccelerateEnd)
	assert.False(t, g.Accelerating())
	assert.Equal(t, DefaultNormalInterval, g.Interval())
	assert.Equal(t, 0, g.Advance(100*time.Millisecond))
}

func TestAccelerateCustomDivider(t *testing.T) {
	g := New(Options{
		Picker:         onlyPicker(PieceT),
		NormalInterval: 300 * time.Millisecond,
		SpeedUpDivider: 3,
	})
	g.OnInput(CmdAccelerateBegin)
	assert.Equal(t, 100*time.Millisecond, g.Interval())
}

func TestStepMapsActionsInOrder(t *testing.T) {
	g := newTestGame(time.Millisecond)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionRight)
	in.Set(core.ActionLeft)
	res := g.Step(in)

	assert.Equal(t, 0, res.Ticks)
	assert.Equal(t, SpawnCol+1, g.Active().Col)
}

func TestStepTicksPerFrame(t *testing.T) {
	g := newTestGame(100 * time.Millisecond)
	empty := core.NewInputFrame()

	ticks := 0
	for i := 0; i < 10; i++ {
		ticks += g.Step(empty).Ticks
	}
	assert.Equal(t, 5, ticks)
	assert.Equal(t, SpawnRow+5, g.Active().Row)
}

func TestStepForUsesElapsed(t *testing.T) {
	g := newTestGame(time.Hour)
	in := core.NewInputFrame()
	in.Set(core.ActionRight)

	res := g.StepFor(in, 450*time.Millisecond)
	assert.Equal(t, 2, res.Ticks)
	assert.Equal(t, SpawnCol+1, g.Active().Col)
	assert.Equal(t, SpawnRow+2, g.Active().Row)
}

func TestSoftDropReleasedWhilePaused(t *testing.T) {
	g := newTestGame(10 * time.Millisecond)

	step := func(a core.Action) {
		in := core.NewInputFrame()
		in.Set(a)
		g.StepFor(in, 0)
	}

	step(core.ActionAccelerateBegin)
	require.Equal(t, DefaultNormalInterval/DefaultSpeedUpDivider, g.Interval())

	step(core.ActionPause)
	step(core.ActionAccelerateEnd)
	step(core.ActionPause)

	assert.False(t, g.Paused())
	assert.False(t, g.Accelerating())
	assert.Equal(t, g.NormalInterval(), g.Interval())
}

func TestStepPause(t *testing.T) {
	g := newTestGame(DefaultNormalInterval)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	require.True(t, res.State.Paused)
	assert.Equal(t, 0, res.Ticks)

	move := core.NewInputFrame()
	move.Set(core.ActionLeft)
	g.Step(move)
	assert.Equal(t, SpawnCol, g.Active().Col)
	assert.Equal(t, SpawnRow, g.Active().Row)

	res = g.Step(pause)
	assert.False(t, res.State.Paused)
	assert.Equal(t, 1, res.Ticks)
}

func TestStepRestart(t *testing.T) {
	g := newTestGame(DefaultNormalInterval)
	g.OnInput(CmdAccelerateBegin)
	for i := 0; i < 30; i++ {
		g.Tick()
	}
	grid := g.Grid()
	require.False(t, grid.Empty())

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	grid = g.Grid()
	assert.True(t, grid.Empty())
	assert.False(t, res.State.Accelerating)
	assert.Equal(t, DefaultNormalInterval, g.Interval())
	assert.Equal(t, SpawnRow+1, g.Active().Row)
}

func TestGameRoundEndHook(t *testing.T) {
	var rounds []RoundStats
	g := New(Options{
		Picker:     onlyPicker(PieceO),
		OnRoundEnd: func(s RoundStats) { rounds = append(rounds, s) },
	})

	// O stacks two rows per piece in columns 4 and 5: the eleventh tops out
	for i := 0; i < 2000 && len(rounds) == 0; i++ {
		g.Tick()
	}
	require.Len(t, rounds, 1)
	assert.Equal(t, 11, rounds[0].Pieces)
	assert.Equal(t, 1, g.State().Rounds)
	grid := g.Grid()
	assert.True(t, grid.Empty())
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(Options{Seed: 12345, FrameDuration: 50 * time.Millisecond})
		in := core.NewInputFrame()
		for i := 0; i < 600; i++ {
			in.Clear()
			switch i % 9 {
			case 2:
				in.Set(core.ActionRotate)
			case 4:
				in.Set(core.ActionLeft)
			case 6:
				in.Set(core.ActionRight)
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestRender(t *testing.T) {
	g := newTestGame(0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Blockfall")
	assert.Contains(t, screen.String(), "Next")

	w, h := DefaultStyle().MinScreenSize()
	assert.Equal(t, 33, w)
	assert.Equal(t, 23, h)
}

func TestRenderShowsSettledCells(t *testing.T) {
	g := newTestGame(0)
	for i := 0; i < 22; i++ {
		g.Tick()
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// field panel starts after the queue panel and the gap, inside its border
	fieldX := (80-33)/2 + 10 + 1 + 1
	bottom := 1 + 1 + 19
	cell := screen.GetCell(fieldX+4*2, bottom)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, PieceO.TermColor(), cell.Color)
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(0)
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(0)
	g.SetPaused(true)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}
