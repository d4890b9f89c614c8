// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

// ANSIRenderer writes cell updates as ANSI escape sequences
// Cursor positioning is skipped when the cursor already sits on the next cell,
// and SGR is emitted only when the style changes between consecutive cells
type ANSIRenderer struct {
	writer *bufio.Writer
	cursor *terminal.Cursor

	// Style state for coalescing
	last      terminal.Settings
	lastValid bool
}

// NewANSIRenderer creates a renderer writing to w
func NewANSIRenderer(w io.Writer) *ANSIRenderer {
	bw := bufio.NewWriterSize(w, 16384)
	return &ANSIRenderer{
		writer: bw,
		cursor: terminal.NewCursor(bw),
	}
}

// Cursor exposes the renderer's cursor; writes through it share the renderer's buffer
func (r *ANSIRenderer) Cursor() *terminal.Cursor {
	return r.cursor
}

// Draw writes cells and flushes
func (r *ANSIRenderer) Draw(cells []Cell) error {
	if len(cells) == 0 {
		return nil
	}
	for _, c := range cells {
		if !c.At.Valid() {
			return errors.Wrapf(core.ErrInvalidArgument, "draw at %v", c.At)
		}
	}

	w := r.writer
	for _, c := range cells {
		if !r.cursor.At(c.At) {
			// Validated above
			_ = r.cursor.GoTo(c.At)
		}

		if c.IsBlank() {
			r.writeStyle(terminal.Settings{})
			w.WriteByte(' ')
		} else {
			r.writeStyle(c.Style)
			w.WriteString(c.Symbol)
		}
		r.cursor.Advance(1)
	}

	terminal.Reset(w)
	r.lastValid = false

	return r.Flush()
}

// Clear erases the screen and homes the cursor
func (r *ANSIRenderer) Clear() error {
	terminal.Reset(r.writer)
	r.cursor.ClearScreen(false)
	r.lastValid = false
	return r.Flush()
}

// Flush writes buffered output, including anything written through Cursor
func (r *ANSIRenderer) Flush() error {
	return errors.Wrap(r.writer.Flush(), "flush terminal output")
}

// writeStyle emits s unless it is already active; the zero style is a plain reset
func (r *ANSIRenderer) writeStyle(s terminal.Settings) {
	if r.lastValid && s == r.last {
		return
	}
	if s.IsZero() {
		terminal.Reset(r.writer)
	} else {
		s.Apply(r.writer)
	}
	r.last = s
	r.lastValid = true
}
