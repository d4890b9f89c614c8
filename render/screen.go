package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// ScreenRenderer draws cell updates onto a tcell screen
// Cells outside the screen are clipped by tcell
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer wraps an initialized tcell screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Screen returns the underlying tcell screen
func (r *ScreenRenderer) Screen() tcell.Screen {
	return r.screen
}

// Draw sets every cell and shows the screen
func (r *ScreenRenderer) Draw(cells []Cell) error {
	if len(cells) == 0 {
		return nil
	}
	for _, c := range cells {
		if !c.At.Valid() {
			return errors.Wrapf(core.ErrInvalidArgument, "draw at %v", c.At)
		}
	}

	for _, c := range cells {
		if c.IsBlank() {
			r.screen.SetContent(c.At.Col, c.At.Row, ' ', nil, tcell.StyleDefault)
			continue
		}
		runes := []rune(c.Symbol)
		r.screen.SetContent(c.At.Col, c.At.Row, runes[0], runes[1:], terminal.TcellStyle(c.Style))
	}
	r.screen.Show()
	return nil
}
