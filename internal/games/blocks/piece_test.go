package blocks

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationCounts(t *testing.T) {
	want := map[PieceType]int{
		PieceI: 2, PieceO: 1, PieceT: 4, PieceS: 2, PieceZ: 2, PieceJ: 4, PieceL: 4,
	}
	for pt, n := range want {
		assert.Equal(t, n, RotationCount(pt), "piece %s", pt)
	}
}

func TestShapeRotationIsModular(t *testing.T) {
	for _, pt := range AllPieces() {
		n := RotationCount(pt)
		for r := 0; r < n; r++ {
			base := Shape(pt, r)
			for k := -3; k <= 3; k++ {
				assert.Equal(t, base, Shape(pt, r+k*n), "piece %s rotation %d k=%d", pt, r, k)
			}
		}
	}
}

func TestShapeRotationFiveOnTwoStatePiece(t *testing.T) {
	assert.Equal(t, Shape(PieceI, 1), Shape(PieceI, 5))
	assert.Equal(t, Shape(PieceS, 1), Shape(PieceS, -1))
}

func TestPopcountInvariantAcrossRotations(t *testing.T) {
	for _, pt := range AllPieces() {
		for r := 0; r < RotationCount(pt); r++ {
			assert.Equal(t, 4, Shape(pt, r).Count(), "piece %s rotation %d", pt, r)
		}
	}
}

func TestRotationsAreDistinct(t *testing.T) {
	for _, pt := range AllPieces() {
		seen := make(map[Mask]int)
		for r := 0; r < RotationCount(pt); r++ {
			m := Shape(pt, r)
			prev, dup := seen[m]
			assert.False(t, dup, "piece %s rotation %d repeats rotation %d", pt, r, prev)
			seen[m] = r
		}
	}
}

func TestShapeTables(t *testing.T) {
	tests := []struct {
		piece    PieceType
		rotation int
		want     string
	}{
		{PieceI, 0, "....\n####\n....\n...."},
		{PieceI, 1, "..#.\n..#.\n..#.\n..#."},
		{PieceO, 0, "....\n.##.\n.##.\n...."},
		{PieceT, 0, "....\n.###\n..#.\n...."},
		{PieceT, 3, "..#.\n.##.\n..#.\n...."},
		{PieceS, 0, "....\n..##\n.##.\n...."},
		{PieceZ, 1, "...#\n..##\n..#.\n...."},
		{PieceJ, 2, ".#..\n.###\n....\n...."},
		{PieceL, 3, ".##.\n..#.\n..#.\n...."},
	}
	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Shape(tt.piece, tt.rotation).String())
		})
	}
}

func TestOnlyHorizontalIUsesMaskColumnZero(t *testing.T) {
	for _, pt := range AllPieces() {
		for r := 0; r < RotationCount(pt); r++ {
			m := Shape(pt, r)
			usesZero := false
			for y := 0; y < MaskSize; y++ {
				usesZero = usesZero || m.Occupied(0, y)
			}
			assert.Equal(t, pt == PieceI && r == 0, usesZero, "piece %s rotation %d", pt, r)
		}
	}
}

func TestPieceColors(t *testing.T) {
	assert.Equal(t, color.RGBA{43, 172, 225, 255}, PieceI.Color())
	assert.Equal(t, color.RGBA{248, 150, 34, 255}, PieceL.Color())
	assert.Equal(t, color.RGBA{}, PieceNone.Color())

	seen := make(map[color.RGBA]bool)
	for _, pt := range AllPieces() {
		c := pt.Color()
		assert.False(t, seen[c], "duplicate color for %s", pt)
		seen[c] = true
	}
}

func TestPieceStringAndValid(t *testing.T) {
	assert.Equal(t, "IOTSZJL", func() string {
		s := ""
		for _, pt := range AllPieces() {
			s += pt.String()
		}
		return s
	}())
	assert.Equal(t, "-", PieceNone.String())
	assert.False(t, PieceNone.Valid())
	assert.False(t, PieceType(PieceCount).Valid())
}

func TestShapePanicsOnInvalidType(t *testing.T) {
	require.Panics(t, func() { Shape(PieceNone, 0) })
	require.Panics(t, func() { RotationCount(PieceType(9)) })
}
