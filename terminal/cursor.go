package terminal

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
)

// Direction selects a relative cursor movement; values are the CSI final bytes
type Direction byte

const (
	CursorUp                 Direction = 'A'
	CursorDown               Direction = 'B'
	CursorRight              Direction = 'C'
	CursorLeft               Direction = 'D'
	CursorNextLine           Direction = 'E' // Beginning of next line
	CursorPrevLine           Direction = 'F' // Beginning of previous line
	CursorHorizontalAbsolute Direction = 'G'
)

// EraseScreenMode selects the ED (erase in display) region
type EraseScreenMode int

const (
	EraseToEnd EraseScreenMode = iota
	EraseToBeginning
	EraseEntireScreen
	EraseSavedLines
)

// EraseLineMode selects the EL (erase in line) region
type EraseLineMode int

const (
	EraseLineToEnd EraseLineMode = iota
	EraseLineToBeginning
	EraseEntireLine
)

// Cursor writes positioning sequences and caches the resulting logical position
// It is a plain value owned by whoever renders; there is no process-wide cursor
type Cursor struct {
	w     Writer
	pos   core.Coordinates
	valid bool

	savedPos   core.Coordinates
	savedValid bool
}

// NewCursor creates a cursor writing to w; its position starts unknown
func NewCursor(w Writer) *Cursor {
	return &Cursor{w: w}
}

// Writer returns the sink the cursor writes to
func (c *Cursor) Writer() Writer {
	return c.w
}

// GoTo moves to the 0-indexed cell at, emitting CSI row;col H (1-indexed)
func (c *Cursor) GoTo(at core.Coordinates) error {
	if !at.Valid() {
		return errors.Wrapf(core.ErrInvalidArgument, "cursor position %v", at)
	}
	writeCursorPos(c.w, at.Row, at.Col)
	c.pos = at
	c.valid = true
	return nil
}

// Position returns the cached position, false when unknown
func (c *Cursor) Position() (core.Coordinates, bool) {
	return c.pos, c.valid
}

// At reports whether the cursor is known to sit on cell at
func (c *Cursor) At(at core.Coordinates) bool {
	return c.valid && c.pos == at
}

// Advance records that n single-width glyphs were written at the cursor
func (c *Cursor) Advance(n int) {
	if c.valid {
		c.pos.Col += n
	}
}

// Invalidate forgets the cached position, forcing the next GoTo to be trusted blindly
func (c *Cursor) Invalidate() {
	c.valid = false
}

// Move emits a relative movement of n cells; n < 1 is treated as 1
func (c *Cursor) Move(d Direction, n int) {
	if n < 1 {
		n = 1
	}
	c.w.WriteString(csi)
	writeInt(c.w, n)
	c.w.WriteByte(byte(d))

	if !c.valid {
		return
	}
	switch d {
	case CursorUp:
		c.pos.Row = max(0, c.pos.Row-n)
	case CursorDown:
		c.pos.Row += n
	case CursorRight:
		c.pos.Col += n
	case CursorLeft:
		c.pos.Col = max(0, c.pos.Col-n)
	case CursorNextLine:
		c.pos = core.At(c.pos.Row+n, 0)
	case CursorPrevLine:
		c.pos = core.At(max(0, c.pos.Row-n), 0)
	case CursorHorizontalAbsolute:
		c.pos.Col = n - 1
	default:
		c.valid = false
	}
}

// EraseScreen emits ED; the cursor does not move
func (c *Cursor) EraseScreen(mode EraseScreenMode) {
	c.w.WriteString(csi)
	writeInt(c.w, int(mode))
	c.w.WriteByte('J')
}

// EraseLine emits EL, optionally followed by a carriage return
func (c *Cursor) EraseLine(mode EraseLineMode, carriageReturn bool) {
	c.w.WriteString(csi)
	writeInt(c.w, int(mode))
	c.w.WriteByte('K')
	if carriageReturn {
		c.w.WriteByte('\r')
		c.pos.Col = 0
	}
}

// Save stores the position terminal-side (DECSC)
func (c *Cursor) Save() {
	c.w.WriteString(esc + "7")
	c.savedPos, c.savedValid = c.pos, c.valid
}

// Restore returns to the last saved position (DECRC)
func (c *Cursor) Restore() {
	c.w.WriteString(esc + "8")
	c.pos, c.valid = c.savedPos, c.savedValid
}

// Hide makes the cursor invisible
func (c *Cursor) Hide() {
	c.w.WriteString(csiCursorHide)
}

// Show makes the cursor visible
func (c *Cursor) Show() {
	c.w.WriteString(csiCursorShow)
}

// ClearScreen erases the display (and the scrollback when requested) and homes the cursor
func (c *Cursor) ClearScreen(scrollback bool) {
	c.w.WriteString(csiCLS)
	if scrollback {
		c.w.WriteString(csiSSB)
	}
	c.w.WriteString(csiHome)
	c.pos = core.Origin
	c.valid = true
}
