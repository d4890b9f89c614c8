package field

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
)

// Effect selects how a relative move treats the field edges
type Effect uint8

const (
	// EffectNone rejects destinations outside the field
	EffectNone Effect = iota
	// EffectPacman wraps each axis independently
	EffectPacman
	// EffectMatrix wraps columns into the next or previous row, rows do not wrap
	EffectMatrix
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectPacman:
		return "pacman"
	case EffectMatrix:
		return "matrix"
	}
	return fmt.Sprintf("effect(%d)", uint8(e))
}

// MovingBy computes where p lands after moving by (dRow, dCol) under effect
// The field is not changed; pass the result to ScheduleSwap or MovePawn
func (f *Field) MovingBy(p *Pawn, dRow, dCol int, effect Effect) (core.Coordinates, error) {
	if err := f.alive(); err != nil {
		return core.Coordinates{}, err
	}
	if !f.owns(p) {
		return core.Coordinates{}, errNotOwned
	}

	w, h := f.area.Width, f.area.Height
	row, col := p.pos.Row+dRow, p.pos.Col+dCol
	var dest core.Coordinates

	switch effect {
	case EffectNone:
		dest = core.At(row, col)
	case EffectPacman:
		dest = core.At(floorMod(row, h), floorMod(col, w))
	case EffectMatrix:
		dest = core.At(row+floorDiv(col, w), floorMod(col, w))
	default:
		return core.Coordinates{}, errors.Wrapf(core.ErrInvalidArgument, "unknown movement %s", effect)
	}

	if !f.area.Contains(dest) {
		return core.Coordinates{}, errors.Wrapf(core.ErrInvalidArgument, "move by (%d,%d) leaves field at %s", dRow, dCol, dest)
	}
	return dest, nil
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
