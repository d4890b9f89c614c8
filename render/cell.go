package render

import (
	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// Cell is one screen cell update at absolute screen coordinates
// An empty Symbol is a blank cell in neutral style (Style ignored)
type Cell struct {
	At     core.Coordinates
	Symbol string
	Style  terminal.Settings
}

// Blank returns a neutral blank cell update at c
func Blank(c core.Coordinates) Cell {
	return Cell{At: c}
}

// IsBlank reports whether the cell clears its position
func (c Cell) IsBlank() bool {
	return c.Symbol == ""
}
