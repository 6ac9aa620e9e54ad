// Package blocks implements the falling-block field simulation: the piece
// catalog, the settled-cell grid with line clearing, the upcoming-piece queue
// and the controller that drives one falling piece per fixed tick.
//
// Nothing here knows about terminals or windows. Hosts call Game.OnInput,
// Game.Advance (or Game.Step) and read snapshots back for drawing.
package blocks

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PieceType identifies one of the seven tetrominoes, or PieceNone for an
// empty grid cell.
type PieceType int8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	// PieceNone marks an empty cell. It is never a valid falling piece.
	PieceNone PieceType = -1
)

// PieceCount is the number of real piece types.
const PieceCount = 7

// MaskSize is the side length of a shape mask.
const MaskSize = 4

// Valid reports whether t is one of the seven shapes.
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceL
}

// String returns the conventional letter for the piece.
func (t PieceType) String() string {
	if !t.Valid() {
		return "-"
	}
	return string("IOTSZJL"[t])
}

// Mask is a 4x4 row-major occupancy grid for one (type, rotation) pair.
type Mask [MaskSize * MaskSize]bool

// Occupied reports whether the mask cell at column x, row y is filled.
// Coordinates outside the mask are never occupied.
func (m Mask) Occupied(x, y int) bool {
	if x < 0 || x >= MaskSize || y < 0 || y >= MaskSize {
		return false
	}
	return m[y*MaskSize+x]
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// String renders the mask as four lines of '#' and '.'.
func (m Mask) String() string {
	b := make([]byte, 0, MaskSize*(MaskSize+1))
	for y := 0; y < MaskSize; y++ {
		if y > 0 {
			b = append(b, '\n')
		}
		for x := 0; x < MaskSize; x++ {
			if m.Occupied(x, y) {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

// mask builds a Mask from 16 zeros and ones.
func mask(bits ...int) Mask {
	var m Mask
	for i, b := range bits {
		m[i] = b != 0
	}
	return m
}

// shapes holds every distinct rotation of every piece, indexed by type then
// rotation. Symmetric pieces carry fewer entries; see RotationCount.
var shapes = [PieceCount][]Mask{
	PieceI: {
		mask(
			0, 0, 0, 0,
			1, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 0, 1, 0),
	},
	PieceO: {
		mask(
			0, 0, 0, 0,
			0, 1, 1, 0,
			0, 1, 1, 0,
			0, 0, 0, 0),
	},
	PieceT: {
		mask(
			0, 0, 0, 0,
			0, 1, 1, 1,
			0, 0, 1, 0,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 0,
			0, 0, 1, 1,
			0, 0, 1, 0,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 0,
			0, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 0,
			0, 1, 1, 0,
			0, 0, 1, 0,
			0, 0, 0, 0),
	},
	PieceS: {
		mask(
			0, 0, 0, 0,
			0, 0, 1, 1,
			0, 1, 1, 0,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 0,
			0, 0, 1, 1,
			0, 0, 0, 1,
			0, 0, 0, 0),
	},
	PieceZ: {
		mask(
			0, 0, 0, 0,
			0, 1, 1, 0,
			0, 0, 1, 1,
			0, 0, 0, 0),
		mask(
			0, 0, 0, 1,
			0, 0, 1, 1,
			0, 0, 1, 0,
			0, 0, 0, 0),
	},
	PieceJ: {
		mask(
			0, 0, 0, 0,
			0, 1, 1, 1,
			0, 0, 0, 1,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 1,
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 0, 0, 0),
		mask(
			0, 1, 0, 0,
			0, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 1, 1, 0,
			0, 0, 0, 0),
	},
	PieceL: {
		mask(
			0, 0, 0, 0,
			0, 1, 1, 1,
			0, 1, 0, 0,
			0, 0, 0, 0),
		mask(
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 0, 1, 1,
			0, 0, 0, 0),
		mask(
			0, 0, 0, 1,
			0, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0),
		mask(
			0, 1, 1, 0,
			0, 0, 1, 0,
			0, 0, 1, 0,
			0, 0, 0, 0),
	},
}

// pieceColors are the window colors per type.
var pieceColors = [PieceCount]color.RGBA{
	PieceI: {43, 172, 225, 255},
	PieceO: {253, 225, 0, 255},
	PieceT: {146, 43, 140, 255},
	PieceS: {78, 183, 72, 255},
	PieceZ: {238, 39, 51, 255},
	PieceJ: {0, 90, 157, 255},
	PieceL: {248, 150, 34, 255},
}

// termColors are the closest terminal palette entries per type.
var termColors = [PieceCount]core.Color{
	PieceI: core.ColorBrightCyan,
	PieceO: core.ColorBrightYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// mustValid panics on an out-of-range type. Types only come from the picker
// and from stamped grid cells, so a bad value is a programming error.
func mustValid(t PieceType) {
	if !t.Valid() {
		panic(fmt.Sprintf("blocks: invalid piece type %d", t))
	}
}

// RotationCount returns the number of distinct rotation states of t.
func RotationCount(t PieceType) int {
	mustValid(t)
	return len(shapes[t])
}

// Shape returns the mask of t at the given rotation. The rotation is taken
// modulo RotationCount(t), so any int, negative included, is accepted.
func Shape(t PieceType, rotation int) Mask {
	mustValid(t)
	n := len(shapes[t])
	r := rotation % n
	if r < 0 {
		r += n
	}
	return shapes[t][r]
}

// Color returns the fixed RGB color of t. PieceNone is transparent black.
func (t PieceType) Color() color.RGBA {
	if !t.Valid() {
		return color.RGBA{}
	}
	return pieceColors[t]
}

// TermColor returns the terminal palette color of t.
func (t PieceType) TermColor() core.Color {
	if !t.Valid() {
		return core.ColorDefault
	}
	return termColors[t]
}

// AllPieces returns the seven piece types in catalog order.
func AllPieces() []PieceType {
	return []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}
}
