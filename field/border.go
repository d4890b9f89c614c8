package field

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// Border is a one-character frame drawn around a field
type Border struct {
	symbol string
	style  terminal.Settings
}

// NewBorder validates symbol and style like a pawn glyph
func NewBorder(symbol string, style terminal.Settings) (*Border, error) {
	if err := validateGlyph(symbol, style); err != nil {
		return nil, err
	}
	return &Border{symbol: symbol, style: style}, nil
}

func (b *Border) Symbol() string {
	return b.symbol
}

func (b *Border) Style() terminal.Settings {
	return b.style
}

// Print frames f with b and paints it
func (b *Border) Print(f *Field) error {
	if f == nil {
		return errors.Wrap(core.ErrInvalidArgument, "nil field")
	}
	return f.Print(b)
}
