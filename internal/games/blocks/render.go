package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Style controls terminal drawing.
type Style struct {
	TileWidth int  // screen columns per field cell
	Filled    rune // glyph for an occupied cell
	Empty     rune // glyph for an empty field cell
	Preview   int  // queue entries shown in the side panel
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{
		TileWidth: 2,
		Filled:    '█',
		Empty:     '·',
		Preview:   5,
	}
}

func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.TileWidth <= 0 {
		s.TileWidth = d.TileWidth
	}
	if s.Filled == 0 {
		s.Filled = d.Filled
	}
	if s.Empty == 0 {
		s.Empty = d.Empty
	}
	if s.Preview <= 0 {
		s.Preview = d.Preview
	}
	s.Preview = min(s.Preview, QueueSize)
	return s
}

// Layout constants for the terminal view.
const (
	hudHeight     = 1
	panelGap      = 1
	previewRows   = 2 // rot-0 masks only use mask rows 1 and 2
	previewStride = previewRows + 1
)

// layout is the screen placement of the two panels.
type layout struct {
	queue core.Rect
	field core.Rect
}

// MinScreenSize returns the smallest screen the game renders on.
func (s Style) MinScreenSize() (w, h int) {
	s = s.withDefaults()
	fieldW := FieldWidth*s.TileWidth + 2
	queueW := MaskSize*s.TileWidth + 2
	return queueW + panelGap + fieldW, hudHeight + FieldHeight + 2
}

func (g *Game) layout(dst *core.Screen) layout {
	tw := g.style.TileWidth
	fieldW := FieldWidth*tw + 2
	queueW := MaskSize*tw + 2
	total := queueW + panelGap + fieldW
	x := (dst.Width() - total) / 2
	return layout{
		queue: core.NewRect(x, hudHeight, queueW, FieldHeight+2),
		field: core.NewRect(x+queueW+panelGap, hudHeight, fieldW, FieldHeight+2),
	}
}

// Render draws the HUD, the queue panel on the left and the field on the
// right, with the active piece over the settled cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.style.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	g.renderHUD(dst)
	l := g.layout(dst)
	g.renderQueue(dst, l.queue)
	g.renderField(dst, l.field)

	if g.paused {
		g.renderOverlay(dst, l.field, "PAUSED", "P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	r := g.ctrl.Round()
	hud := fmt.Sprintf(" Blockfall  Round %d  Pieces %d  Rows %d", g.ctrl.Rounds()+1, r.Pieces, r.Rows)
	dst.DrawText(0, 0, hud)
	if g.accelerating {
		dst.DrawTextColored(len([]rune(hud))+2, 0, "FAST", core.ColorBrightYellow)
	}
}

func (g *Game) renderQueue(dst *core.Screen, r core.Rect) {
	dst.DrawBoxColored(r, core.ColorGray)
	dst.DrawText(r.X+1, r.Y, "Next")

	tw := g.style.TileWidth
	queue := g.ctrl.Queue()
	n := min(g.style.Preview, len(queue), (r.H-2)/previewStride)
	for i := 0; i < n; i++ {
		t := queue[i]
		m := Shape(t, 0)
		top := r.Y + 1 + i*previewStride
		for row := 0; row < previewRows; row++ {
			for mx := 0; mx < MaskSize; mx++ {
				if !m.Occupied(mx, row+1) {
					continue
				}
				g.drawTile(dst, r.X+1+mx*tw, top+row, g.style.Filled, t.TermColor())
			}
		}
	}
}

func (g *Game) renderField(dst *core.Screen, r core.Rect) {
	dst.DrawBoxColored(r, core.ColorGray)
	tw := g.style.TileWidth
	ox, oy := r.X+1, r.Y+1

	grid := g.ctrl.Grid()
	for y := 0; y < FieldHeight; y++ {
		for x := 0; x < FieldWidth; x++ {
			t := grid[y][x]
			if t == PieceNone {
				g.drawTile(dst, ox+x*tw, oy+y, g.style.Empty, core.ColorDarkGray)
				continue
			}
			g.drawTile(dst, ox+x*tw, oy+y, g.style.Filled, t.TermColor())
		}
	}

	p := g.ctrl.Active()
	for _, c := range Cells(p.Mask()) {
		x, y := p.Col+c.X, p.Row+c.Y
		if !InBounds(x, y) {
			continue
		}
		g.drawTile(dst, ox+x*tw, oy+y, g.style.Filled, p.Type.TermColor())
	}
}

// drawTile fills one field cell, TileWidth columns wide. Empty cells show
// the glyph once, then blanks.
func (g *Game) drawTile(dst *core.Screen, x, y int, glyph rune, c core.Color) {
	for i := 0; i < g.style.TileWidth; i++ {
		r := glyph
		if glyph == g.style.Empty && i > 0 {
			r = ' '
		}
		dst.SetColored(x+i, y, r, c)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := core.NewRect(area.X+(area.W-w)/2, area.Y+area.H/2-2, w, 4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(w-len(line1))/2, box.Y+1, line1)
	dst.DrawText(box.X+(w-len(line2))/2, box.Y+2, line2)
}
