package core

import "math"

// MaxDimension bounds each axis so the cell count always fits an int
const MaxDimension = math.MaxUint16

// Area represents a rectangular region anchored at the origin
type Area struct {
	Width, Height int // Dimensions (minimum 1x1 for a usable area)
}

// Valid reports whether both dimensions lie in [1, MaxDimension]
func (a Area) Valid() bool {
	return a.Width > 0 && a.Height > 0 && a.Width <= MaxDimension && a.Height <= MaxDimension
}

// Contains reports whether c falls inside [0,Height) x [0,Width)
func (a Area) Contains(c Coordinates) bool {
	return c.Row >= 0 && c.Row < a.Height && c.Col >= 0 && c.Col < a.Width
}

// Size returns the number of cells
func (a Area) Size() int {
	return a.Width * a.Height
}

// Index maps coordinates to a flat row-major index, -1 when outside
func (a Area) Index(c Coordinates) int {
	if !a.Contains(c) {
		return -1
	}
	return c.Row*a.Width + c.Col
}

// Coordinates maps a flat row-major index back to coordinates
func (a Area) Coordinates(idx int) Coordinates {
	return Coordinates{Row: idx / a.Width, Col: idx % a.Width}
}
