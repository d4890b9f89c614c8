package render

import (
	"github.com/lixenwraith/sista/core"
)

// Recorder is an in-memory Renderer keeping every Draw call
// Used by tests and headless runs to inspect emitted updates
type Recorder struct {
	Batches [][]Cell
	screen  map[core.Coordinates]Cell
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{screen: make(map[core.Coordinates]Cell)}
}

// Draw records a copy of cells
func (r *Recorder) Draw(cells []Cell) error {
	if len(cells) == 0 {
		return nil
	}
	batch := make([]Cell, len(cells))
	copy(batch, cells)
	r.Batches = append(r.Batches, batch)
	for _, c := range cells {
		if c.IsBlank() {
			delete(r.screen, c.At)
		} else {
			r.screen[c.At] = c
		}
	}
	return nil
}

// Last returns the most recent batch, nil when nothing was drawn
func (r *Recorder) Last() []Cell {
	if len(r.Batches) == 0 {
		return nil
	}
	return r.Batches[len(r.Batches)-1]
}

// CellAt returns what the recorded screen shows at c
func (r *Recorder) CellAt(c core.Coordinates) (Cell, bool) {
	cell, ok := r.screen[c]
	return cell, ok
}

// Reset drops recorded batches, keeping the screen image
func (r *Recorder) Reset() {
	r.Batches = nil
}
