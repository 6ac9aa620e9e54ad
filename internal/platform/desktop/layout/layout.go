// Package layout computes pixel placement for the desktop window: a queue
// panel on the left third, the field on the right two thirds.
package layout

import (
	"github.com/vovakirdan/blockfall/internal/games/blocks"
)

// Queue previews are drawn with tiles of panel width / queueTileDiv and
// one slot every queueSlotTiles tiles.
const (
	queueTileDiv   = 6
	queueSlotTiles = 5
)

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Layout holds the panel rectangles and tile sizes for one window size.
type Layout struct {
	Queue      Rect
	Field      Rect
	Tile       float32 // field tile side
	QueueTile  float32 // preview tile side
	QueueSlots int     // previews that fit in the queue panel
}

// Compute lays out a width x height window with margin pixels around and
// between the panels.
func Compute(width, height, margin int) Layout {
	inner := float32(width - margin*3)
	panelH := float32(height - margin*2)
	m := float32(margin)

	queue := Rect{X: m, Y: m, W: inner / 3, H: panelH}
	field := Rect{X: m + queue.W + m, Y: m, W: 2 * inner / 3, H: panelH}

	tile := float32((height - margin*2) / blocks.FieldHeight)
	qt := float32(int(queue.W / queueTileDiv))

	slots := 0
	if qt > 0 {
		slots = min(int(panelH/qt)/queueSlotTiles+1, blocks.QueueSize)
	}

	return Layout{
		Queue:      queue,
		Field:      field,
		Tile:       tile,
		QueueTile:  qt,
		QueueSlots: slots,
	}
}

// FieldCell returns the top-left pixel of field cell (x, y). y may be
// negative for rows above the field.
func (l Layout) FieldCell(x, y int) (float32, float32) {
	return l.Field.X + float32(x)*l.Tile, l.Field.Y + float32(y)*l.Tile
}

// QueueSlot returns the top-left pixel of the mask for the i-th queued
// piece. I and O are shifted a full tile right, the rest half a tile.
func (l Layout) QueueSlot(i int, t blocks.PieceType) (float32, float32) {
	shift := float32(0.5)
	if t == blocks.PieceI || t == blocks.PieceO {
		shift = 1
	}
	return l.Queue.X + l.QueueTile*shift, l.Queue.Y + float32(i)*l.QueueTile*queueSlotTiles
}

// Line is a segment from (X0, Y0) to (X1, Y1).
type Line struct {
	X0, Y0, X1, Y1 float32
}

// GridLines returns the inner separators of the field: FieldWidth-1
// vertical lines followed by FieldHeight-1 horizontal ones.
func (l Layout) GridLines() []Line {
	w := float32(blocks.FieldWidth) * l.Tile
	h := float32(blocks.FieldHeight) * l.Tile
	ox, oy := l.Field.X, l.Field.Y

	lines := make([]Line, 0, blocks.FieldWidth-1+blocks.FieldHeight-1)
	for x := 1; x < blocks.FieldWidth; x++ {
		px := ox + float32(x)*l.Tile
		lines = append(lines, Line{px, oy, px, oy + h})
	}
	for y := 1; y < blocks.FieldHeight; y++ {
		py := oy + float32(y)*l.Tile
		lines = append(lines, Line{ox, py, ox + w, py})
	}
	return lines
}
