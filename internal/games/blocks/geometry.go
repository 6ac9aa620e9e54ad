package blocks

// Point is a cell coordinate, either inside a mask or on the field.
type Point struct {
	X, Y int
}

// BottomCells returns the occupied cells of m whose underside is exposed:
// the cell sits in the last mask row, or the mask cell directly below it is
// empty. These are the only cells that can land on anything when the piece
// falls one row. Cells are returned in row-major order.
func BottomCells(m Mask) []Point {
	cells := make([]Point, 0, MaskSize)
	for y := 0; y < MaskSize; y++ {
		for x := 0; x < MaskSize; x++ {
			if !m.Occupied(x, y) {
				continue
			}
			if y == MaskSize-1 || !m.Occupied(x, y+1) {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Cells returns every occupied cell of m in row-major order.
func Cells(m Mask) []Point {
	cells := make([]Point, 0, MaskSize)
	for y := 0; y < MaskSize; y++ {
		for x := 0; x < MaskSize; x++ {
			if m.Occupied(x, y) {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}
