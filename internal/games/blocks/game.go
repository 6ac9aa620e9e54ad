package blocks

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/dependencies/random"
)

// Default timing.
const (
	DefaultNormalInterval = 200 * time.Millisecond
	DefaultSpeedUpDivider = 4
)

// Options configures a Game. Zero fields take defaults.
type Options struct {
	NormalInterval time.Duration    // fall interval at normal speed
	SpeedUpDivider int              // normal interval is divided by this while accelerating
	FrameDuration  time.Duration    // wall time one Step covers
	Picker         Picker           // piece source; seeded from Seed when nil
	Seed           int64            // seed for the default picker
	Style          Style            // terminal drawing style
	OnRoundEnd     func(RoundStats) // called on every top-out
}

func (o Options) withDefaults() Options {
	if o.NormalInterval <= 0 {
		o.NormalInterval = DefaultNormalInterval
	}
	if o.SpeedUpDivider <= 0 {
		o.SpeedUpDivider = DefaultSpeedUpDivider
	}
	if o.FrameDuration <= 0 {
		o.FrameDuration = core.DefaultConfig().FrameDuration()
	}
	if o.Picker == nil {
		o.Picker = NewRandomPicker(random.New(o.Seed))
	}
	o.Style = o.Style.withDefaults()
	return o
}

// Game drives a Controller from wall time. It owns the fixed-step
// accumulator and the normal and soft-drop intervals, and adapts host
// frames (core.InputFrame) to controller commands.
type Game struct {
	ctrl  *Controller
	step  *core.FixedStep
	opts  Options
	style Style

	accelerating bool
	paused       bool
	frames       uint64
}

// New creates a game with the given options, reset and ready to tick.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts:  opts,
		style: opts.Style,
		step:  core.NewFixedStep(opts.NormalInterval),
	}
	var ctrlOpts []ControllerOption
	if opts.OnRoundEnd != nil {
		ctrlOpts = append(ctrlOpts, WithRoundEnd(opts.OnRoundEnd))
	}
	g.ctrl = NewController(opts.Picker, ctrlOpts...)
	return g
}

// NormalInterval returns the fall interval at normal speed.
func (g *Game) NormalInterval() time.Duration {
	return g.opts.NormalInterval
}

// Interval returns the fall interval currently in effect.
func (g *Game) Interval() time.Duration {
	return g.step.Interval()
}

// Accelerating reports whether the soft-drop interval is active.
func (g *Game) Accelerating() bool {
	return g.accelerating
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// OnInput applies a command. Accelerate begin and end switch the fall
// interval; the change applies from the next Advance. Everything else goes
// to the controller.
func (g *Game) OnInput(cmd Command) {
	switch cmd {
	case CmdAccelerateBegin:
		g.accelerating = true
		g.step.SetInterval(g.opts.NormalInterval / time.Duration(g.opts.SpeedUpDivider))
	case CmdAccelerateEnd:
		g.accelerating = false
		g.step.SetInterval(g.opts.NormalInterval)
	default:
		g.ctrl.OnInput(cmd)
	}
}

// Tick advances the simulation by exactly one fixed step.
func (g *Game) Tick() {
	g.ctrl.Tick()
}

// Reset restarts the field and drops accumulated time. Speed returns to
// normal.
func (g *Game) Reset() {
	g.ctrl.Reset()
	g.step.Reset()
	g.accelerating = false
	g.step.SetInterval(g.opts.NormalInterval)
}

// Advance feeds elapsed wall time to the accumulator and ticks once per
// whole interval. Returns the number of ticks run. Nothing runs while
// paused.
func (g *Game) Advance(elapsed time.Duration) int {
	if g.paused {
		return 0
	}
	return g.step.Advance(elapsed, g.ctrl.Tick)
}

// commandFor maps a host action to a command.
func commandFor(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CmdMoveLeft
	case core.ActionRight:
		return CmdMoveRight
	case core.ActionRotate:
		return CmdRotate
	case core.ActionAccelerateBegin:
		return CmdAccelerateBegin
	case core.ActionAccelerateEnd:
		return CmdAccelerateEnd
	default:
		return CmdNone
	}
}

// Step runs one host frame of FrameDuration. See StepFor.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepFor(in, g.opts.FrameDuration)
}

// StepFor runs one host frame: actions in arrival order, then elapsed wall
// time. Pause toggles; restart resets the field. While paused only pause,
// restart and accelerate end are honored.
func (g *Game) StepFor(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.frames++
	for _, a := range in.Ordered() {
		switch a {
		case core.ActionPause:
			g.paused = !g.paused
		case core.ActionRestart:
			g.Reset()
			g.paused = false
		case core.ActionAccelerateEnd:
			// a release during a pause still ends soft drop
			g.OnInput(CmdAccelerateEnd)
		default:
			if g.paused {
				continue
			}
			if cmd := commandFor(a); cmd != CmdNone {
				g.OnInput(cmd)
			}
		}
	}

	ticks := g.Advance(elapsed)
	return core.StepResult{State: g.State(), Ticks: ticks}
}

// State returns the host-visible status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused:       g.paused,
		Accelerating: g.accelerating,
		Rounds:       g.ctrl.Rounds(),
	}
}

// Grid returns a copy of the settled cells.
func (g *Game) Grid() Grid {
	return g.ctrl.Grid()
}

// Active returns the falling piece.
func (g *Game) Active() ActivePiece {
	return g.ctrl.Active()
}

// Queue returns the upcoming pieces, front first.
func (g *Game) Queue() []PieceType {
	return g.ctrl.Queue()
}

// Round returns the stats of the round in progress.
func (g *Game) Round() RoundStats {
	return g.ctrl.Round()
}
