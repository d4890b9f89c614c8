package field

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/render"
	"github.com/lixenwraith/sista/terminal"
)

// Option configures a Field at construction
type Option func(*Field)

// WithRenderer sets the sink for cell updates; without one the field is silent
func WithRenderer(r render.Renderer) Option {
	return func(f *Field) {
		f.renderer = r
	}
}

// WithOrigin offsets every drawn cell by origin (top-left of the frame when bordered)
func WithOrigin(origin core.Coordinates) Option {
	return func(f *Field) {
		f.origin = origin
	}
}

// WithLogger sets the logger for batch diagnostics
func WithLogger(log logrus.FieldLogger) Option {
	return func(f *Field) {
		if log != nil {
			f.log = log
		}
	}
}

// Field is a fixed-size grid holding at most one pawn per cell
// Not safe for concurrent use
type Field struct {
	area     core.Area
	grid     *core.Grid[*Pawn]
	pawns    *core.Arena[*Pawn]
	pending  []swap
	renderer render.Renderer
	origin   core.Coordinates
	border   *Border // Active border, shifts drawing by (+1,+1)
	log      logrus.FieldLogger

	destroyed bool
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New creates an empty width x height field
func New(width, height int, opts ...Option) (*Field, error) {
	area := core.Area{Width: width, Height: height}
	if !area.Valid() {
		return nil, errors.Wrapf(core.ErrInvalidDimension, "field %dx%d", width, height)
	}
	f := &Field{
		area:  area,
		grid:  core.NewGrid[*Pawn](area),
		pawns: core.NewArena[*Pawn](),
		log:   discardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Field) Width() int {
	return f.area.Width
}

func (f *Field) Height() int {
	return f.area.Height
}

// InBounds reports whether c lies inside the field
func (f *Field) InBounds(c core.Coordinates) bool {
	return f.area.Contains(c)
}

// IsFree reports whether c is inside the field and unoccupied
func (f *Field) IsFree(c core.Coordinates) bool {
	p, ok := f.grid.Get(c)
	return ok && p == nil
}

// PawnAt returns the occupant of c, nil when empty or out of bounds
func (f *Field) PawnAt(c core.Coordinates) *Pawn {
	p, _ := f.grid.Get(c)
	return p
}

// Pawn resolves a handle, false when stale
func (f *Field) Pawn(h PawnHandle) (*Pawn, bool) {
	return f.pawns.Get(core.Handle(h))
}

// Pawns returns live pawns in creation-slot order
func (f *Field) Pawns() []*Pawn {
	out := make([]*Pawn, 0, f.pawns.Len())
	f.pawns.Each(func(_ core.Handle, p *Pawn) {
		out = append(out, p)
	})
	return out
}

// SetRenderer replaces the output sink; nil silences the field
func (f *Field) SetRenderer(r render.Renderer) {
	f.renderer = r
}

// Border returns the active border, nil when none
func (f *Field) Border() *Border {
	return f.border
}

// CreatePawn places a new pawn at a free cell and draws it
func (f *Field) CreatePawn(symbol string, style terminal.Settings, at core.Coordinates) (*Pawn, error) {
	if err := f.alive(); err != nil {
		return nil, err
	}
	if err := validateGlyph(symbol, style); err != nil {
		return nil, err
	}
	if !f.area.Contains(at) {
		return nil, errors.Wrapf(core.ErrInvalidArgument, "cell %s outside %dx%d field", at, f.area.Width, f.area.Height)
	}
	if occupant := f.PawnAt(at); occupant != nil {
		return nil, errors.Wrapf(core.ErrInvalidArgument, "cell %s already holds pawn %s", at, occupant.handle)
	}

	p := &Pawn{symbol: symbol, style: style, pos: at, field: f}
	p.handle = PawnHandle(f.pawns.Insert(p))
	f.grid.Set(at, p)
	f.grid.Commit()

	return p, f.draw([]core.Coordinates{at})
}

// RemovePawn detaches p, drops its queued swap and blanks its cell
func (f *Field) RemovePawn(p *Pawn) error {
	if err := f.alive(); err != nil {
		return err
	}
	if !f.owns(p) {
		return errors.Wrap(core.ErrHandleNotOwned, "pawn not tracked by this field")
	}
	f.pawns.Remove(core.Handle(p.handle))
	f.dequeue(p)
	f.grid.Set(p.pos, nil)
	f.grid.Commit()
	p.field = nil

	return f.draw([]core.Coordinates{p.pos})
}

// MovePawn relocates p immediately; the target must be free
func (f *Field) MovePawn(p *Pawn, to core.Coordinates) error {
	if err := f.alive(); err != nil {
		return err
	}
	if !f.owns(p) {
		return errNotOwned
	}
	if !f.area.Contains(to) {
		return errors.Wrapf(core.ErrInvalidArgument, "cell %s outside %dx%d field", to, f.area.Width, f.area.Height)
	}
	if to == p.pos {
		return nil
	}
	if !f.IsFree(to) {
		return errors.Wrapf(core.ErrInvalidArgument, "cell %s is occupied", to)
	}

	f.grid.Set(p.pos, nil)
	f.grid.Set(to, p)
	p.pos = to
	changed := f.grid.Changes()
	f.grid.Commit()

	return f.draw(changed)
}

// Destroy releases every pawn; the field rejects all later calls
func (f *Field) Destroy() {
	if f.destroyed {
		return
	}
	f.pawns.Each(func(_ core.Handle, p *Pawn) {
		p.field = nil
	})
	f.pawns = core.NewArena[*Pawn]()
	f.grid.Reset()
	f.pending = nil
	f.border = nil
	f.destroyed = true
}

// Print paints the whole field; a non-nil border is drawn around it and stays
// active for later incremental draws, nil deactivates it
func (f *Field) Print(border *Border) error {
	if err := f.alive(); err != nil {
		return err
	}
	f.border = border
	if f.renderer == nil {
		return nil
	}

	cells := make([]render.Cell, 0, (f.area.Width+2)*(f.area.Height+2))
	if border == nil {
		f.grid.Each(func(c core.Coordinates, _ *Pawn) {
			cells = append(cells, f.cell(c))
		})
	} else {
		for row := -1; row <= f.area.Height; row++ {
			for col := -1; col <= f.area.Width; col++ {
				c := core.At(row, col)
				if f.area.Contains(c) {
					cells = append(cells, f.cell(c))
				} else {
					cells = append(cells, render.Cell{At: f.screen(c), Symbol: border.symbol, Style: border.style})
				}
			}
		}
	}
	if err := f.renderer.Draw(cells); err != nil {
		return errors.Wrap(err, "print field")
	}
	return nil
}

// screen maps field coordinates to absolute screen coordinates
func (f *Field) screen(c core.Coordinates) core.Coordinates {
	c = c.Add(f.origin)
	if f.border != nil {
		c = c.Add(core.At(1, 1))
	}
	return c
}

// cell builds the render update for field cell c
func (f *Field) cell(c core.Coordinates) render.Cell {
	p := f.PawnAt(c)
	if p == nil {
		return render.Blank(f.screen(c))
	}
	return render.Cell{At: f.screen(c), Symbol: p.symbol, Style: p.style}
}

func (f *Field) draw(changed []core.Coordinates) error {
	if f.renderer == nil || len(changed) == 0 {
		return nil
	}
	cells := make([]render.Cell, len(changed))
	for i, c := range changed {
		cells[i] = f.cell(c)
	}
	if err := f.renderer.Draw(cells); err != nil {
		return errors.Wrap(err, "draw field cells")
	}
	return nil
}

func (f *Field) owns(p *Pawn) bool {
	if p == nil || p.field != f {
		return false
	}
	got, ok := f.pawns.Get(core.Handle(p.handle))
	return ok && got == p
}

func (f *Field) alive() error {
	if f.destroyed {
		return errors.Wrap(core.ErrHandleNotOwned, "field destroyed")
	}
	return nil
}
