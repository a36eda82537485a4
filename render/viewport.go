package render

import "math"

// A terminal cell is about twice as tall as it is wide, so one cell covers
// CellWidth×CellHeight world units and circles stay round.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Viewport maps between terminal cells and world units.
type Viewport struct {
	Cols, Rows int
}

// WorldSize is the play field the viewport shows.
func (v Viewport) WorldSize() (float64, float64) {
	return float64(v.Cols) * CellWidth, float64(v.Rows) * CellHeight
}

// ToCell returns the cell containing world point (x, y).
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// ToWorld returns the world point at the center of cell (col, row).
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

func (v Viewport) contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
