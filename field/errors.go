package field

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/sista/core"
)

// errNotOwned matches both core.ErrInvalidArgument and core.ErrHandleNotOwned
var errNotOwned = fmt.Errorf("%w: %w", core.ErrInvalidArgument, core.ErrHandleNotOwned)

// ConflictError lists the destinations that could not be resolved in a batch
// Cells[i] is the contested cell, Pawns[i] the pawns claiming or holding it
type ConflictError struct {
	Cells []core.Coordinates
	Pawns [][]*Pawn
}

func (e *ConflictError) Error() string {
	var b strings.Builder
	b.WriteString("swap conflict at")
	for i, c := range e.Cells {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %s (%d pawns)", c, len(e.Pawns[i]))
	}
	return b.String()
}

// Unwrap lets errors.Is match core.ErrSwapConflict
func (e *ConflictError) Unwrap() error {
	return core.ErrSwapConflict
}

func (e *ConflictError) add(c core.Coordinates, pawns ...*Pawn) {
	e.Cells = append(e.Cells, c)
	e.Pawns = append(e.Pawns, pawns)
}
