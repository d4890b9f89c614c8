package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sista/core"
)

func TestCursorGoToIsOneIndexed(t *testing.T) {
	var b strings.Builder
	c := NewCursor(&b)

	_, known := c.Position()
	assert.False(t, known)

	require.NoError(t, c.GoTo(core.At(0, 0)))
	require.NoError(t, c.GoTo(core.At(4, 11)))
	assert.Equal(t, "\x1b[1;1H\x1b[5;12H", b.String())

	pos, known := c.Position()
	assert.True(t, known)
	assert.Equal(t, core.At(4, 11), pos)
}

func TestCursorGoToRejectsNegative(t *testing.T) {
	var b strings.Builder
	c := NewCursor(&b)
	require.NoError(t, c.GoTo(core.At(1, 1)))
	b.Reset()

	err := c.GoTo(core.At(-1, 0))
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
	err = c.GoTo(core.At(0, -3))
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))

	// Nothing emitted, cache untouched
	assert.Empty(t, b.String())
	assert.True(t, c.At(core.At(1, 1)))
}

func TestCursorAdvanceAndInvalidate(t *testing.T) {
	var b strings.Builder
	c := NewCursor(&b)
	c.Advance(3)
	_, known := c.Position()
	assert.False(t, known, "advance must not invent a position")

	c.GoTo(core.At(2, 2))
	c.Advance(2)
	assert.True(t, c.At(core.At(2, 4)))

	c.Invalidate()
	assert.False(t, c.At(core.At(2, 4)))
}

func TestCursorMove(t *testing.T) {
	var b strings.Builder
	c := NewCursor(&b)
	c.GoTo(core.At(5, 5))
	b.Reset()

	c.Move(CursorUp, 2)
	c.Move(CursorRight, 0)
	c.Move(CursorLeft, 10)
	assert.Equal(t, "\x1b[2A\x1b[1C\x1b[10D", b.String())
	assert.True(t, c.At(core.At(3, 0)))

	c.Move(CursorNextLine, 1)
	assert.True(t, c.At(core.At(4, 0)))
	c.Move(CursorHorizontalAbsolute, 7)
	assert.True(t, c.At(core.At(4, 6)))
}

func TestCursorSaveRestore(t *testing.T) {
	var b strings.Builder
	c := NewCursor(&b)
	c.GoTo(core.At(1, 2))
	c.Save()
	c.GoTo(core.At(8, 8))
	c.Restore()
	assert.True(t, c.At(core.At(1, 2)))
	assert.True(t, strings.HasSuffix(b.String(), "\x1b8"))
}

func TestCursorEraseAndClear(t *testing.T) {
	var b strings.Builder
	c := NewCursor(&b)
	c.EraseScreen(EraseEntireScreen)
	c.EraseLine(EraseEntireLine, true)
	c.ClearScreen(true)
	c.Hide()
	c.Show()
	assert.Equal(t, "\x1b[2J\x1b[2K\r\x1b[2J\x1b[3J\x1b[H\x1b[?25l\x1b[?25h", b.String())
	assert.True(t, c.At(core.Origin))
}
