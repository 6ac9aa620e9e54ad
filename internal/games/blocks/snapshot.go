package blocks

import (
	"strings"
	"time"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frames   uint64
	Grid     Grid
	Active   ActivePiece
	Queue    []PieceType
	Interval time.Duration
	Round    RoundStats
	Rounds   int
	Paused   bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frames:   g.frames,
		Grid:     g.ctrl.Grid(),
		Active:   g.ctrl.Active(),
		Queue:    g.ctrl.Queue(),
		Interval: g.step.Interval(),
		Round:    g.ctrl.Round(),
		Rounds:   g.ctrl.Rounds(),
		Paused:   g.paused,
	}
}

// String renders the grid one line per row, settled cells by piece letter
// and empty cells as '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(FieldHeight * (FieldWidth + 1))
	for y := 0; y < FieldHeight; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < FieldWidth; x++ {
			t := g[y][x]
			if t == PieceNone {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}
