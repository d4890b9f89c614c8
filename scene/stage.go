package scene

import (
	"context"
	"errors"
	"io"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/field"
	"github.com/lixenwraith/sista/render"
)

// Stage is a scene materialized on a field
type Stage struct {
	scene  *Scene
	field  *field.Field
	border *field.Border
	pawns  map[string]*field.Pawn
	next   int
	log    logrus.FieldLogger
}

// Build creates the field, border and pawns of s, drawing to r
// Nothing is drawn until Repaint or Play
func (s *Scene) Build(r render.Renderer, origin core.Coordinates, log logrus.FieldLogger) (*Stage, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	f, err := field.New(s.Width, s.Height, field.WithOrigin(origin), field.WithLogger(log))
	if err != nil {
		return nil, err
	}

	st := &Stage{
		scene: s,
		field: f,
		pawns: make(map[string]*field.Pawn, len(s.Pawns)),
		log:   log,
	}
	if s.Border != nil {
		style, err := s.Border.Style()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "border")
		}
		if st.border, err = field.NewBorder(s.Border.Symbol, style); err != nil {
			return nil, pkgerrors.Wrap(err, "border")
		}
	}
	for _, def := range s.Pawns {
		style, err := def.Style()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "pawn %q", def.Name)
		}
		p, err := f.CreatePawn(def.Symbol, style, def.At())
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "pawn %q", def.Name)
		}
		st.pawns[def.Name] = p
	}

	// Initial layout is silent, the first Repaint shows it whole
	f.SetRenderer(r)
	return st, nil
}

// Field returns the stage's field
func (st *Stage) Field() *field.Field {
	return st.field
}

// Pawn returns a pawn by scene name
func (st *Stage) Pawn(name string) (*field.Pawn, bool) {
	p, ok := st.pawns[name]
	return p, ok
}

// Done reports whether every step has been played
func (st *Stage) Done() bool {
	return st.next >= len(st.scene.Steps)
}

// Repaint draws the whole field with its border
func (st *Stage) Repaint() error {
	return st.field.Print(st.border)
}

// Step schedules and applies the next batch of moves
// A conflicting batch is skipped: the queue is cleared and the *field.ConflictError
// returned, the stage still advances
func (st *Stage) Step() (bool, error) {
	if st.Done() {
		return false, nil
	}
	idx := st.next
	st.next++

	for _, m := range st.scene.Steps[idx].Moves {
		if err := st.field.ScheduleSwap(st.pawns[m.Pawn], core.At(m.Row, m.Col)); err != nil {
			st.field.ClearSwaps()
			return false, pkgerrors.Wrapf(err, "step %d pawn %q", idx, m.Pawn)
		}
	}
	applied, err := st.field.ApplySwaps()
	if errors.Is(err, core.ErrSwapConflict) {
		st.field.ClearSwaps()
	}
	if err != nil {
		return applied, pkgerrors.Wrapf(err, "step %d", idx)
	}
	return applied, nil
}

// Play repaints, then applies one step per interval until the scene ends or
// ctx is done. Sending on repaint forces a full repaint, e.g. when a viewer joins
// A conflicting step is logged and skipped; other errors stop playback
func (st *Stage) Play(ctx context.Context, interval time.Duration, repaint <-chan struct{}) error {
	if interval <= 0 {
		interval = st.scene.Delay()
	}
	if err := st.Repaint(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !st.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-repaint:
			if err := st.Repaint(); err != nil {
				return err
			}
		case <-ticker.C:
			_, err := st.Step()
			var conflict *field.ConflictError
			if errors.As(err, &conflict) {
				st.log.WithFields(logrus.Fields{
					"step":  st.next - 1,
					"cells": conflict.Cells,
				}).Warn("step skipped on swap conflict")
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
