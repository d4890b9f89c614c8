package core

import "sort"

// Grid is a dense 2D grid of values with change tracking
// Cells are stored row-major in a flat slice: index = row*Width + col
// Every write records the value the cell held at the last Commit, so Changes
// reports only cells whose content actually differs (a value written back to
// its original cell is not a change)
type Grid[T comparable] struct {
	area     Area
	cells    []T
	baseline map[int]T // Original value of each touched cell since last Commit
}

// NewGrid creates a grid of zero values; area must be valid
func NewGrid[T comparable](area Area) *Grid[T] {
	return &Grid[T]{
		area:     area,
		cells:    make([]T, area.Size()),
		baseline: make(map[int]T),
	}
}

// Area returns the grid bounds
func (g *Grid[T]) Area() Area {
	return g.area
}

// Get returns the value at c, zero value and false when out of bounds
func (g *Grid[T]) Get(c Coordinates) (T, bool) {
	idx := g.area.Index(c)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return g.cells[idx], true
}

// Set stores v at c and records the change; returns false when out of bounds
func (g *Grid[T]) Set(c Coordinates, v T) bool {
	idx := g.area.Index(c)
	if idx < 0 {
		return false
	}
	if _, touched := g.baseline[idx]; !touched {
		g.baseline[idx] = g.cells[idx]
	}
	g.cells[idx] = v
	return true
}

// Changes returns cells whose value differs from the last Commit, row-major
func (g *Grid[T]) Changes() []Coordinates {
	changed := make([]Coordinates, 0, len(g.baseline))
	for idx, orig := range g.baseline {
		if g.cells[idx] != orig {
			changed = append(changed, g.area.Coordinates(idx))
		}
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].Less(changed[j]) })
	return changed
}

// Commit accepts current content as the new baseline
func (g *Grid[T]) Commit() {
	clear(g.baseline)
}

// Rollback restores every touched cell to its baseline value
func (g *Grid[T]) Rollback() {
	for idx, orig := range g.baseline {
		g.cells[idx] = orig
	}
	clear(g.baseline)
}

// Each visits every cell row-major
func (g *Grid[T]) Each(fn func(c Coordinates, v T)) {
	for idx, v := range g.cells {
		fn(g.area.Coordinates(idx), v)
	}
}

// Reset zeroes every cell and drops tracking state
func (g *Grid[T]) Reset() {
	clear(g.cells)
	clear(g.baseline)
}
