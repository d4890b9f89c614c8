package core

import "fmt"

// Coordinates addresses a grid cell, 0-indexed, row-major
// Value type: compare with ==
type Coordinates struct {
	Row int
	Col int
}

// Origin is the top-left cell
var Origin = Coordinates{}

// At builds coordinates from row and column
func At(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Valid reports whether both components are non-negative
func (c Coordinates) Valid() bool {
	return c.Row >= 0 && c.Col >= 0
}

// Add returns the component-wise sum
func (c Coordinates) Add(o Coordinates) Coordinates {
	return Coordinates{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns the component-wise difference
func (c Coordinates) Sub(o Coordinates) Coordinates {
	return Coordinates{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Less orders coordinates row-major, the order cells are written to a terminal
func (c Coordinates) Less(o Coordinates) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
