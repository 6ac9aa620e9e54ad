package blocks

// Field dimensions in cells.
const (
	FieldWidth  = 10
	FieldHeight = 20
)

// Grid holds the settled cells, indexed [row][column]. A cell is not
// PieceNone iff a locked piece occupies it.
type Grid [FieldHeight][FieldWidth]PieceType

// NewGrid returns an empty grid.
func NewGrid() Grid {
	var g Grid
	g.Clear()
	return g
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for y := range g {
		g.clearRow(y)
	}
}

func (g *Grid) clearRow(y int) {
	for x := range g[y] {
		g[y][x] = PieceNone
	}
}

// InBounds reports whether (x, y) is a grid cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// Cell returns the content at (x, y), or PieceNone outside the grid.
func (g *Grid) Cell(x, y int) PieceType {
	if !InBounds(x, y) {
		return PieceNone
	}
	return g[y][x]
}

// Set writes a cell. Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, t PieceType) {
	if !InBounds(x, y) {
		return
	}
	g[y][x] = t
}

// RowFull reports whether every column of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= FieldHeight {
		return false
	}
	for x := 0; x < FieldWidth; x++ {
		if g[y][x] == PieceNone {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] != PieceNone {
				n++
			}
		}
	}
	return n
}

// Empty reports whether no cell is occupied.
func (g *Grid) Empty() bool {
	return g.Filled() == 0
}

// Stamp writes the occupied cells of t at the given rotation with the mask's
// top-left corner at (col, row). Cells left or right of the grid, or below
// its floor, are clipped. Returns true if any occupied cell that is inside
// the grid horizontally lies above row 0: the field has topped out.
func (g *Grid) Stamp(t PieceType, rotation, col, row int) (toppedOut bool) {
	m := Shape(t, rotation)
	for _, c := range Cells(m) {
		x, y := col+c.X, row+c.Y
		if x < 0 || x >= FieldWidth || y >= FieldHeight {
			continue
		}
		if y < 0 {
			toppedOut = true
			continue
		}
		g[y][x] = t
	}
	return toppedOut
}

// ClearFullRows clears the full rows among the four rows starting at top
// (the band of the piece that just locked) and drops everything above each
// cleared row. Rows below the band are never touched. Returns the number of
// rows cleared.
func (g *Grid) ClearFullRows(top int) int {
	var cleared [MaskSize]bool
	count := 0
	for y := max(top, 0); y < min(FieldHeight, top+MaskSize); y++ {
		if g.RowFull(y) {
			cleared[y-top] = true
			g.clearRow(y)
			count++
		}
	}
	if count == 0 {
		return 0
	}

	drop := 0
	for y := FieldHeight - 1; y >= 0; y-- {
		if y >= top && y < top+MaskSize && cleared[y-top] {
			drop++
			continue
		}
		if drop == 0 {
			continue
		}
		g[y+drop] = g[y]
	}

	// rows vacated at the top by the drop
	for y := 0; y < drop; y++ {
		g.clearRow(y)
	}
	return count
}
