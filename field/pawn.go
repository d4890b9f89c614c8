package field

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// PawnHandle identifies a pawn inside its field; stale after removal
type PawnHandle core.Handle

func (h PawnHandle) String() string {
	return core.Handle(h).String()
}

// Pawn is a one-character glyph placed on a field cell
type Pawn struct {
	symbol string
	style  terminal.Settings
	pos    core.Coordinates
	handle PawnHandle
	field  *Field // nil once removed
}

// Symbol returns the glyph
func (p *Pawn) Symbol() string {
	return p.symbol
}

// Style returns the display style
func (p *Pawn) Style() terminal.Settings {
	return p.style
}

// Position returns the current cell
func (p *Pawn) Position() core.Coordinates {
	return p.pos
}

func (p *Pawn) Handle() PawnHandle {
	return p.handle
}

// Field returns the owning field, nil after removal
func (p *Pawn) Field() *Field {
	return p.field
}

// SetStyle replaces the style and redraws the pawn's cell
func (p *Pawn) SetStyle(style terminal.Settings) error {
	if p.field == nil {
		return errors.Wrapf(core.ErrHandleNotOwned, "pawn %s was removed", p.handle)
	}
	if !style.Valid() {
		return errors.Wrapf(core.ErrInvalidArgument, "style %+v has absent or unknown values", style)
	}
	p.style = style
	return p.field.draw([]core.Coordinates{p.pos})
}
