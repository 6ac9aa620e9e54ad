package blocks

import (
	"github.com/vovakirdan/blockfall/internal/dependencies/random"
)

// Spawn position of every new piece: mask left edge and top edge. The piece
// starts fully above the visible field.
const (
	SpawnCol = 3
	SpawnRow = -4
)

// Loose horizontal clamp applied to a tentative move before the legality
// check rejects it.
const (
	minMoveCol = -2
	maxMoveCol = FieldWidth - 1
)

// Command is a discrete player command.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdRotate
	CmdAccelerateBegin
	CmdAccelerateEnd
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdRotate:
		return "Rotate"
	case CmdAccelerateBegin:
		return "AccelerateBegin"
	case CmdAccelerateEnd:
		return "AccelerateEnd"
	default:
		return "None"
	}
}

// Direction is a horizontal move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Picker produces piece types for spawns and queue refills.
type Picker interface {
	Pick() PieceType
}

// RandomPicker draws uniformly from the seven piece types.
type RandomPicker struct {
	rng random.Random
}

// NewRandomPicker creates a picker over the given source.
func NewRandomPicker(rng random.Random) *RandomPicker {
	return &RandomPicker{rng: rng}
}

// Pick returns a uniformly random piece type.
func (p *RandomPicker) Pick() PieceType {
	return PieceType(p.rng.Intn(PieceCount))
}

// ActivePiece is the falling piece: its type, rotation index and the field
// position of its mask's top-left corner. Col and Row may be negative.
type ActivePiece struct {
	Type     PieceType
	Rotation int
	Col      int
	Row      int
}

// Mask returns the shape of the piece at its current rotation.
func (a ActivePiece) Mask() Mask {
	return Shape(a.Type, a.Rotation)
}

// RoundStats counts what happened in one round. A round runs from a reset
// to the next top-out.
type RoundStats struct {
	Pieces int // pieces locked into the grid
	Rows   int // rows cleared
	Ticks  int // fall ticks
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithRoundEnd registers fn to be called with the finished round's stats on
// every top-out, before the field is reset.
func WithRoundEnd(fn func(RoundStats)) ControllerOption {
	return func(c *Controller) {
		c.onRoundEnd = fn
	}
}

// Controller owns the grid, the active piece and the queue, and runs the
// fall, lock and clear cycle one tick at a time. It is not safe for
// concurrent use.
type Controller struct {
	picker Picker
	grid   Grid
	queue  Queue
	active ActivePiece

	round      RoundStats
	rounds     int
	onRoundEnd func(RoundStats)
}

// NewController creates a controller and resets it, so the grid is empty,
// a piece is falling and the queue is full.
func NewController(picker Picker, opts ...ControllerOption) *Controller {
	c := &Controller{picker: picker}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// Reset clears the grid and the queue, spawns a random piece and refills
// the queue with independent picks. Round stats start over.
func (c *Controller) Reset() {
	c.grid.Clear()
	c.queue.Clear()
	c.round = RoundStats{}
	c.Spawn(c.picker.Pick())
	for !c.queue.Full() {
		c.queue.Push(c.picker.Pick())
	}
}

// Spawn makes t the active piece at the spawn position, rotation 0. When
// the queue is not empty its front is consumed and a fresh pick is pushed,
// so the queue keeps its length.
func (c *Controller) Spawn(t PieceType) {
	mustValid(t)
	c.active = ActivePiece{Type: t, Rotation: 0, Col: SpawnCol, Row: SpawnRow}
	if _, ok := c.queue.Pop(); ok {
		c.queue.Push(c.picker.Pick())
	}
}

// OnInput applies a player command. Accelerate commands change the tick
// rate, which the driver owns, so they are ignored here.
func (c *Controller) OnInput(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		c.Move(DirLeft)
	case CmdMoveRight:
		c.Move(DirRight)
	case CmdRotate:
		c.Rotate()
	}
}

// Move shifts the active piece one column. The tentative column is clamped
// to [-2, FieldWidth-1]; if the piece would then leave the field
// horizontally or overlap a settled cell the move is undone and the column
// is exactly what it was before.
func (c *Controller) Move(dir Direction) {
	prev := c.active.Col
	switch dir {
	case DirLeft:
		c.active.Col = max(prev-1, minMoveCol)
	case DirRight:
		c.active.Col = min(prev+1, maxMoveCol)
	default:
		return
	}
	if !c.fits(c.active) {
		c.active.Col = prev
	}
}

// Rotate advances the rotation index by one. There is no wall kick: a
// rotation that does not fit in place is undone.
func (c *Controller) Rotate() {
	prev := c.active.Rotation
	c.active.Rotation = (prev + 1) % RotationCount(c.active.Type)
	if !c.fits(c.active) {
		c.active.Rotation = prev
	}
}

// fits reports whether every occupied cell of p lies within the field's
// columns and on no settled cell. Rows above and below the field are not
// checked here; the floor is found by Tick.
func (c *Controller) fits(p ActivePiece) bool {
	for _, cell := range Cells(p.Mask()) {
		x, y := p.Col+cell.X, p.Row+cell.Y
		if x < 0 || x >= FieldWidth {
			return false
		}
		if InBounds(x, y) && c.grid[y][x] != PieceNone {
			return false
		}
	}
	return true
}

// landed reports whether the active piece rests on the floor or on a
// settled cell.
func (c *Controller) landed() bool {
	p := c.active
	for _, cell := range BottomCells(p.Mask()) {
		x, y := p.Col+cell.X, p.Row+cell.Y+1
		if y >= FieldHeight {
			return true
		}
		if InBounds(x, y) && c.grid[y][x] != PieceNone {
			return true
		}
	}
	return false
}

// Tick advances the simulation one fixed step: the active piece either
// falls one row or, if it has landed, locks. Locking stamps the piece,
// clears full rows in its band and spawns the queue front. A lock that
// leaves cells above the field ends the round and resets.
func (c *Controller) Tick() {
	c.round.Ticks++
	if !c.landed() {
		c.active.Row++
		return
	}
	c.place()
}

func (c *Controller) place() {
	p := c.active
	toppedOut := c.grid.Stamp(p.Type, p.Rotation, p.Col, p.Row)
	c.round.Pieces++
	if toppedOut {
		c.endRound()
		c.Reset()
		return
	}

	c.round.Rows += c.grid.ClearFullRows(p.Row)
	next, _ := c.queue.Front()
	c.Spawn(next)
}

func (c *Controller) endRound() {
	c.rounds++
	if c.onRoundEnd != nil {
		c.onRoundEnd(c.round)
	}
}

// Grid returns a copy of the settled cells.
func (c *Controller) Grid() Grid {
	return c.grid
}

// Active returns the falling piece.
func (c *Controller) Active() ActivePiece {
	return c.active
}

// Queue returns the upcoming pieces, front first.
func (c *Controller) Queue() []PieceType {
	return c.queue.Items()
}

// Round returns the stats of the round in progress.
func (c *Controller) Round() RoundStats {
	return c.round
}

// Rounds returns how many rounds have ended by top-out.
func (c *Controller) Rounds() int {
	return c.rounds
}
