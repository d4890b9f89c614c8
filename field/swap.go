// @lixen: #focus{core[field,swap]}
package field

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/sista/core"
)

// swap is one queued move: pawn to destination
type swap struct {
	pawn *Pawn
	to   core.Coordinates
}

// ScheduleSwap queues a move of p to dest without touching the grid
// Scheduling a pawn that is already queued replaces its destination
func (f *Field) ScheduleSwap(p *Pawn, dest core.Coordinates) error {
	if err := f.alive(); err != nil {
		return err
	}
	if p == nil {
		return errors.Wrap(core.ErrInvalidArgument, "nil pawn")
	}
	if !f.owns(p) {
		return errNotOwned
	}
	if !f.area.Contains(dest) {
		return errors.Wrapf(core.ErrInvalidArgument, "destination %s outside %dx%d field", dest, f.area.Width, f.area.Height)
	}

	for i := range f.pending {
		if f.pending[i].pawn == p {
			f.pending[i].to = dest
			return nil
		}
	}
	f.pending = append(f.pending, swap{pawn: p, to: dest})
	return nil
}

// Pending returns the number of queued swaps
func (f *Field) Pending() int {
	return len(f.pending)
}

// Scheduled returns the queued destination of p, false when p is not queued
func (f *Field) Scheduled(p *Pawn) (core.Coordinates, bool) {
	for _, s := range f.pending {
		if s.pawn == p {
			return s.to, true
		}
	}
	return core.Coordinates{}, false
}

// ClearSwaps drops every queued swap
func (f *Field) ClearSwaps() {
	f.pending = f.pending[:0]
}

// ApplySwaps moves every queued pawn at once and draws the changed cells
// Returns false with no output for an empty queue. On a conflict nothing
// changes, the queue included, and the error is a *ConflictError
// A renderer failure is reported after the grid has been updated
func (f *Field) ApplySwaps() (bool, error) {
	if err := f.alive(); err != nil {
		return false, err
	}
	if len(f.pending) == 0 {
		return false, nil
	}

	if conflict := f.conflicts(); conflict != nil {
		f.log.WithFields(logrus.Fields{
			"pending":   len(f.pending),
			"conflicts": len(conflict.Cells),
		}).Debug("swap batch rejected")
		return false, conflict
	}

	// Vacate every origin before placing, so exchanges and cycles resolve
	for _, s := range f.pending {
		f.grid.Set(s.pawn.pos, nil)
	}
	for _, s := range f.pending {
		f.grid.Set(s.to, s.pawn)
		s.pawn.pos = s.to
	}
	moved := len(f.pending)
	f.pending = f.pending[:0]

	changed := f.grid.Changes()
	f.grid.Commit()

	f.log.WithFields(logrus.Fields{
		"swaps":   moved,
		"changed": len(changed),
	}).Debug("swap batch applied")

	return true, f.draw(changed)
}

// conflicts checks the queue against the grid, nil when the batch can land
func (f *Field) conflicts() *ConflictError {
	moving := make(map[*Pawn]struct{}, len(f.pending))
	for _, s := range f.pending {
		moving[s.pawn] = struct{}{}
	}

	var conflict *ConflictError
	report := func(c core.Coordinates, pawns ...*Pawn) {
		if conflict == nil {
			conflict = &ConflictError{}
		}
		conflict.add(c, pawns...)
	}

	claims := make(map[core.Coordinates]*Pawn, len(f.pending))
	for _, s := range f.pending {
		if first, taken := claims[s.to]; taken {
			report(s.to, first, s.pawn)
			continue
		}
		claims[s.to] = s.pawn

		occupant := f.PawnAt(s.to)
		if occupant == nil || occupant == s.pawn {
			continue
		}
		if _, leaves := moving[occupant]; !leaves {
			report(s.to, s.pawn, occupant)
		}
	}
	return conflict
}

func (f *Field) dequeue(p *Pawn) {
	kept := f.pending[:0]
	for _, s := range f.pending {
		if s.pawn != p {
			kept = append(kept, s)
		}
	}
	f.pending = kept
}
