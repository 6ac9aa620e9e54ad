// Package desktop hosts the block game in an ebiten window. Unlike a
// terminal, the window reports key releases, so soft drop ends exactly when
// the down key is let go.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/dependencies/clock"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/desktop/layout"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	panelColor = color.RGBA{30, 30, 30, 255}
	gridColor  = color.RGBA{50, 50, 50, 128}
	shadeColor = color.RGBA{0, 0, 0, 160}
)

// Options configures the window.
type Options struct {
	Width  int
	Height int
	Margin int
	TPS    int
	Title  string
	Clock  clock.Clock
	Logger *log.Logger

	// OnRoundEnd is called with the round in progress when the player
	// restarts or closes the window. Top-outs are reported by the game.
	OnRoundEnd func(stats blocks.RoundStats, reason string)
}

// DefaultOptions returns the classic 600x760 window at 30 TPS.
func DefaultOptions() Options {
	return Options{
		Width:  600,
		Height: 760,
		Margin: 20,
		TPS:    30,
		Title:  "Blockfall",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Margin < 0 {
		o.Margin = d.Margin
	}
	if o.TPS <= 0 {
		o.TPS = d.TPS
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// binding maps window keys to one action on press.
type binding struct {
	keys   []ebiten.Key
	action core.Action
}

var pressBindings = []binding{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, core.ActionRotate},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, core.ActionAccelerateBegin},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
}

var dropKeys = []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}

// Window implements ebiten.Game around a blocks.Game.
type Window struct {
	ctx    context.Context
	game   *blocks.Game
	opts   Options
	layout layout.Layout
	watch  core.Stopwatch
	tile   *ebiten.Image
}

// NewWindow creates a window host for game. The game should be built with
// a zero FrameDuration; the window feeds it measured wall time.
func NewWindow(ctx context.Context, game *blocks.Game, opts Options) *Window {
	opts = opts.withDefaults()
	tile := ebiten.NewImage(1, 1)
	tile.Fill(color.White)
	return &Window{
		ctx:    ctx,
		game:   game,
		opts:   opts,
		layout: layout.Compute(opts.Width, opts.Height, opts.Margin),
		tile:   tile,
	}
}

// Update collects key edges and advances the game by the wall time since
// the previous update.
func (w *Window) Update() error {
	if err := w.ctx.Err(); err != nil {
		w.finish()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.finish()
		return ebiten.Termination
	}

	frame := core.NewInputFrame()
	for _, b := range pressBindings {
		if anyJustPressed(b.keys) {
			frame.Set(b.action)
		}
	}
	for _, k := range dropKeys {
		if inpututil.IsKeyJustReleased(k) {
			frame.Set(core.ActionAccelerateEnd)
			break
		}
	}
	if frame.Has(core.ActionRestart) {
		w.report(storage.EndRestart)
	}

	w.game.StepFor(frame, w.watch.Lap(w.opts.Clock.Now()))
	return nil
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (w *Window) report(reason string) {
	if w.opts.OnRoundEnd != nil {
		w.opts.OnRoundEnd(w.game.Round(), reason)
	}
}

// finish reports the unfinished round once.
func (w *Window) finish() {
	w.report(storage.EndQuit)
	w.opts.OnRoundEnd = nil
}

// Draw paints both panels.
func (w *Window) Draw(screen *ebiten.Image) {
	l := w.layout
	vector.DrawFilledRect(screen, l.Queue.X, l.Queue.Y, l.Queue.W, l.Queue.H, panelColor, false)
	vector.DrawFilledRect(screen, l.Field.X, l.Field.Y, l.Field.W, l.Field.H, panelColor, false)

	w.drawQueue(screen)
	w.drawField(screen)
	w.drawHUD(screen)
}

func (w *Window) drawQueue(screen *ebiten.Image) {
	l := w.layout
	queue := w.game.Queue()
	n := min(l.QueueSlots, len(queue))
	for i := range n {
		x, y := l.QueueSlot(i, queue[i])
		m := blocks.Shape(queue[i], 0)
		for _, c := range blocks.Cells(m) {
			w.fillTile(screen, x+float32(c.X)*l.QueueTile, y+float32(c.Y)*l.QueueTile, l.QueueTile, queue[i].Color())
		}
	}
}

func (w *Window) drawField(screen *ebiten.Image) {
	l := w.layout
	grid := w.game.Grid()
	for y := range blocks.FieldHeight {
		for x := range blocks.FieldWidth {
			t := grid[y][x]
			if t == blocks.PieceNone {
				continue
			}
			px, py := l.FieldCell(x, y)
			w.fillTile(screen, px, py, l.Tile, t.Color())
		}
	}

	p := w.game.Active()
	for _, c := range blocks.Cells(p.Mask()) {
		x, y := p.Col+c.X, p.Row+c.Y
		if !blocks.InBounds(x, y) {
			continue
		}
		px, py := l.FieldCell(x, y)
		w.fillTile(screen, px, py, l.Tile, p.Type.Color())
	}

	for _, ln := range l.GridLines() {
		vector.StrokeLine(screen, ln.X0, ln.Y0, ln.X1, ln.Y1, 1, gridColor, false)
	}
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	l := w.layout
	r := w.game.Round()
	hud := fmt.Sprintf("Round %d\nPieces %d\nRows %d", w.game.State().Rounds+1, r.Pieces, r.Rows)
	if w.game.Accelerating() {
		hud += "\nFAST"
	}
	ebitenutil.DebugPrintAt(screen, hud, int(l.Queue.X)+4, int(l.Queue.Y+l.Queue.H)-64)

	if w.game.Paused() {
		vector.DrawFilledRect(screen, l.Field.X, l.Field.Y, l.Field.W, l.Field.H, shadeColor, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\nP to resume",
			int(l.Field.X+l.Field.W/2)-36, int(l.Field.Y+l.Field.H/2)-16)
	}
}

// fillTile draws one square tile scaled from the 1x1 white image.
func (w *Window) fillTile(screen *ebiten.Image, x, y, size float32, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size), float64(size))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(w.tile, op)
}

// Layout keeps the logical screen at the configured size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.opts.Width, w.opts.Height
}

// Run opens the window and blocks until it is closed, Q is pressed or ctx
// is done. Closing the window reports the round in progress as a quit.
func Run(ctx context.Context, game *blocks.Game, opts Options) error {
	w := NewWindow(ctx, game, opts)

	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetTPS(w.opts.TPS)

	w.opts.Logger.Info("window opened", "width", w.opts.Width, "height", w.opts.Height, "tps", w.opts.TPS)
	err := ebiten.RunGame(w)
	w.finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	w.opts.Logger.Info("window closed")
	return nil
}
