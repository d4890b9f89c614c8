// @lixen: #focus{arch[api,boundary]}
package api

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/field"
	"github.com/lixenwraith/sista/render"
	"github.com/lixenwraith/sista/terminal"
)

// FieldHandle addresses a field owned by an Engine
type FieldHandle core.Handle

// BorderHandle addresses a border owned by an Engine
type BorderHandle core.Handle

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger handed to every created field
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMirror sends every cell update to r as well as the ANSI output
func WithMirror(r render.Renderer) Option {
	return func(e *Engine) {
		e.mirrors = append(e.mirrors, r)
	}
}

// Engine owns fields and borders behind generation-checked handles and
// serializes all calls, so it may be shared between goroutines
// Every field draws to the same ANSI stream
type Engine struct {
	mu      sync.Mutex
	out     *render.ANSIRenderer
	sink    render.Renderer
	mirrors []render.Renderer
	fields  *core.Arena[*field.Field]
	borders *core.Arena[*field.Border]
	log     logrus.FieldLogger
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewEngine creates an engine writing ANSI output to w
func NewEngine(w io.Writer, opts ...Option) *Engine {
	e := &Engine{
		out:     render.NewANSIRenderer(w),
		fields:  core.NewArena[*field.Field](),
		borders: core.NewArena[*field.Border](),
		log:     discardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sink = e.out
	if len(e.mirrors) > 0 {
		e.sink = render.Multi(append([]render.Renderer{e.out}, e.mirrors...)...)
	}
	return e
}

// CreateField allocates an empty field
func (e *Engine) CreateField(width, height int) (FieldHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := field.New(width, height, field.WithRenderer(e.sink), field.WithLogger(e.log))
	if err != nil {
		return FieldHandle{}, err
	}
	h := FieldHandle(e.fields.Insert(f))
	e.log.WithFields(logrus.Fields{"field": core.Handle(h), "width": width, "height": height}).Debug("field created")
	return h, nil
}

// DestroyField releases a field and all its pawns
func (e *Engine) DestroyField(h FieldHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, ok := e.fields.Remove(core.Handle(h))
	if !ok {
		return errors.Wrapf(core.ErrHandleNotOwned, "field %s", core.Handle(h))
	}
	f.Destroy()
	return nil
}

// CreatePawn places a pawn on a field and draws it
func (e *Engine) CreatePawn(h FieldHandle, symbol string, style terminal.Settings, at core.Coordinates) (field.PawnHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := e.field(h)
	if err != nil {
		return field.PawnHandle{}, err
	}
	p, err := f.CreatePawn(symbol, style, at)
	if p == nil {
		return field.PawnHandle{}, err
	}
	return p.Handle(), err
}

// RemovePawn detaches a pawn and blanks its cell
func (e *Engine) RemovePawn(h FieldHandle, ph field.PawnHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, p, err := e.pawn(h, ph)
	if err != nil {
		return err
	}
	return f.RemovePawn(p)
}

// ScheduleSwap queues a move; true when the swap was queued
func (e *Engine) ScheduleSwap(h FieldHandle, ph field.PawnHandle, dest core.Coordinates) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, p, err := e.pawn(h, ph)
	if err != nil {
		return false, fmt.Errorf("%w: %w", core.ErrInvalidArgument, err)
	}
	if err := f.ScheduleSwap(p, dest); err != nil {
		return false, err
	}
	return true, nil
}

// ApplySwaps lands the queued batch; see field.Field.ApplySwaps
func (e *Engine) ApplySwaps(h FieldHandle) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := e.field(h)
	if err != nil {
		return false, err
	}
	return f.ApplySwaps()
}

// ClearSwaps drops the queued batch
func (e *Engine) ClearSwaps(h FieldHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := e.field(h)
	if err != nil {
		return err
	}
	f.ClearSwaps()
	return nil
}

// PawnPosition returns where a pawn currently sits
func (e *Engine) PawnPosition(h FieldHandle, ph field.PawnHandle) (core.Coordinates, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, p, err := e.pawn(h, ph)
	if err != nil {
		return core.Coordinates{}, err
	}
	return p.Position(), nil
}

// CreateBorder allocates a border style
func (e *Engine) CreateBorder(symbol string, style terminal.Settings) (BorderHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, err := field.NewBorder(symbol, style)
	if err != nil {
		return BorderHandle{}, err
	}
	return BorderHandle(e.borders.Insert(b)), nil
}

// DestroyBorder releases a border; fields printed with it keep their frame
// until they are printed again
func (e *Engine) DestroyBorder(b BorderHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.borders.Remove(core.Handle(b)); !ok {
		return errors.Wrapf(core.ErrHandleNotOwned, "border %s", core.Handle(b))
	}
	return nil
}

// PrintField paints a field, framed when border is non-nil
func (e *Engine) PrintField(h FieldHandle, border *BorderHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := e.field(h)
	if err != nil {
		return err
	}
	var b *field.Border
	if border != nil {
		var ok bool
		if b, ok = e.borders.Get(core.Handle(*border)); !ok {
			return errors.Wrapf(core.ErrHandleNotOwned, "border %s", core.Handle(*border))
		}
	}
	return f.Print(b)
}

// SetForegroundColor emits the foreground SGR for code 30-37
func (e *Engine) SetForegroundColor(code int) error {
	c, err := ForegroundFromCode(code)
	if err != nil {
		return err
	}
	return e.emit(func(w terminal.Writer) { terminal.SetForegroundColor(w, c) })
}

// SetBackgroundColor emits the background SGR for code 40-47
func (e *Engine) SetBackgroundColor(code int) error {
	c, err := BackgroundFromCode(code)
	if err != nil {
		return err
	}
	return e.emit(func(w terminal.Writer) { terminal.SetBackgroundColor(w, c) })
}

// SetAttribute emits the SGR enabling attribute code 0-9
func (e *Engine) SetAttribute(code int) error {
	a, err := AttributeFromCode(code)
	if err != nil {
		return err
	}
	return e.emit(func(w terminal.Writer) { terminal.SetAttribute(w, a) })
}

// ResetAttribute emits the SGR disabling attribute code 0-9
func (e *Engine) ResetAttribute(code int) error {
	a, err := AttributeFromCode(code)
	if err != nil {
		return err
	}
	return e.emit(func(w terminal.Writer) { terminal.ResetAttribute(w, a) })
}

// ResetAnsi clears all styling
func (e *Engine) ResetAnsi() error {
	return e.emit(func(w terminal.Writer) { terminal.Reset(w) })
}

// CursorGoTo positions the output cursor
func (e *Engine) CursorGoTo(at core.Coordinates) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.out.Cursor().GoTo(at); err != nil {
		return err
	}
	return e.out.Flush()
}

func (e *Engine) emit(fn func(w terminal.Writer)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(e.out.Cursor().Writer())
	return e.out.Flush()
}

func (e *Engine) field(h FieldHandle) (*field.Field, error) {
	f, ok := e.fields.Get(core.Handle(h))
	if !ok {
		return nil, errors.Wrapf(core.ErrHandleNotOwned, "field %s", core.Handle(h))
	}
	return f, nil
}

func (e *Engine) pawn(h FieldHandle, ph field.PawnHandle) (*field.Field, *field.Pawn, error) {
	f, err := e.field(h)
	if err != nil {
		return nil, nil, err
	}
	p, ok := f.Pawn(ph)
	if !ok {
		return nil, nil, errors.Wrapf(core.ErrHandleNotOwned, "pawn %s", ph)
	}
	return f, p, nil
}
