package api

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/hinshun/vt10x"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/render"
	"github.com/lixenwraith/sista/terminal"
)

var style = terminal.NewSettings(terminal.Green, terminal.Black)

func TestEngineVersion(t *testing.T) {
	assert.Equal(t, "3.0.0", Version)
}

func TestEngineFieldLifecycle(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out)

	_, err := e.CreateField(-1, 5)
	assert.True(t, errors.Is(err, core.ErrInvalidDimension))

	h, err := e.CreateField(10, 5)
	require.NoError(t, err)
	p, err := e.CreatePawn(h, "P", style, core.At(2, 3))
	require.NoError(t, err)

	queued, err := e.ScheduleSwap(h, p, core.At(4, 4))
	require.NoError(t, err)
	assert.True(t, queued)

	out.Reset()
	applied, err := e.ApplySwaps(h)
	require.NoError(t, err)
	assert.True(t, applied)

	pos, err := e.PawnPosition(h, p)
	require.NoError(t, err)
	assert.Equal(t, core.At(4, 4), pos)

	vt := vt10x.New(vt10x.WithSize(10, 5))
	_, err = vt.Write([]byte("\x1b[1;1HXXXXXXXXXX\x1b[2;1HXXXXXXXXXX\x1b[3;1HXXXXXXXXXX\x1b[4;1HXXXXXXXXXX\x1b[5;1HXXXXXXXXX"))
	require.NoError(t, err)
	_, err = vt.Write(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, ' ', vt.Cell(3, 2).Char, "vacated cell blanked")
	assert.Equal(t, 'P', vt.Cell(4, 4).Char)
	assert.Equal(t, 'X', vt.Cell(0, 0).Char, "untouched cells stay")

	require.NoError(t, e.DestroyField(h))
	err = e.DestroyField(h)
	assert.True(t, errors.Is(err, core.ErrHandleNotOwned), "double release")
	_, err = e.ApplySwaps(h)
	assert.True(t, errors.Is(err, core.ErrHandleNotOwned))
	_, err = e.CreatePawn(h, "Q", style, core.At(0, 0))
	assert.True(t, errors.Is(err, core.ErrHandleNotOwned))
}

func TestEngineStaleHandleReuse(t *testing.T) {
	e := NewEngine(&bytes.Buffer{})
	first, err := e.CreateField(3, 3)
	require.NoError(t, err)
	require.NoError(t, e.DestroyField(first))

	second, err := e.CreateField(3, 3)
	require.NoError(t, err)
	assert.Equal(t, first.Index, second.Index, "slot reused")

	_, err = e.CreatePawn(first, "P", style, core.At(0, 0))
	assert.True(t, errors.Is(err, core.ErrHandleNotOwned), "stale handle must not alias the new field")
}

func TestEnginePawnHandles(t *testing.T) {
	e := NewEngine(&bytes.Buffer{})
	h, err := e.CreateField(3, 3)
	require.NoError(t, err)
	p, err := e.CreatePawn(h, "P", style, core.At(0, 0))
	require.NoError(t, err)

	_, err = e.CreatePawn(h, "Q", style, core.At(0, 0))
	assert.True(t, errors.Is(err, core.ErrInvalidArgument), "occupied")

	require.NoError(t, e.RemovePawn(h, p))
	err = e.RemovePawn(h, p)
	assert.True(t, errors.Is(err, core.ErrHandleNotOwned))

	queued, err := e.ScheduleSwap(h, p, core.At(1, 1))
	assert.False(t, queued)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
	assert.True(t, errors.Is(err, core.ErrHandleNotOwned))
}

func TestEngineConflictAndClear(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out)
	h, _ := e.CreateField(3, 1)
	a, _ := e.CreatePawn(h, "A", style, core.At(0, 0))
	_, _ = e.CreatePawn(h, "B", style, core.At(0, 2))

	_, err := e.ScheduleSwap(h, a, core.At(0, 2))
	require.NoError(t, err)
	out.Reset()

	applied, err := e.ApplySwaps(h)
	assert.False(t, applied)
	assert.True(t, errors.Is(err, core.ErrSwapConflict))
	assert.Zero(t, out.Len())

	require.NoError(t, e.ClearSwaps(h))
	applied, err = e.ApplySwaps(h)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestEnginePrintFieldWithBorder(t *testing.T) {
	var out bytes.Buffer
	rec := render.NewRecorder()
	e := NewEngine(&out, WithMirror(rec))

	h, _ := e.CreateField(2, 1)
	_, err := e.CreatePawn(h, "P", style, core.At(0, 1))
	require.NoError(t, err)
	b, err := e.CreateBorder("+", style)
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, e.PrintField(h, &b))
	assert.Len(t, rec.Last(), 12)

	vt := vt10x.New(vt10x.WithSize(8, 4))
	_, err = vt.Write(out.Bytes())
	require.NoError(t, err)
	for c, ch := range "++++" {
		assert.Equal(t, ch, vt.Cell(c, 0).Char)
		assert.Equal(t, ch, vt.Cell(c, 2).Char)
	}
	assert.Equal(t, 'P', vt.Cell(2, 1).Char)

	require.NoError(t, e.DestroyBorder(b))
	assert.True(t, errors.Is(e.DestroyBorder(b), core.ErrHandleNotOwned))
	assert.True(t, errors.Is(e.PrintField(h, &b), core.ErrHandleNotOwned))
	require.NoError(t, e.PrintField(h, nil))

	_, err = e.CreateBorder("", style)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestEngineSGRSetters(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out)

	require.NoError(t, e.SetForegroundColor(31))
	require.NoError(t, e.SetBackgroundColor(44))
	require.NoError(t, e.SetAttribute(1))
	require.NoError(t, e.ResetAttribute(1))
	require.NoError(t, e.ResetAnsi())
	require.NoError(t, e.CursorGoTo(core.At(2, 3)))
	assert.Equal(t, "\x1b[31m\x1b[44m\x1b[1m\x1b[22m\x1b[0m\x1b[3;4H", out.String())

	out.Reset()
	assert.True(t, errors.Is(e.SetForegroundColor(41), core.ErrInvalidArgument))
	assert.True(t, errors.Is(e.SetAttribute(10), core.ErrInvalidArgument))
	assert.True(t, errors.Is(e.SetAttribute(257), core.ErrInvalidArgument))
	assert.True(t, errors.Is(e.ResetAttribute(256), core.ErrInvalidArgument))
	assert.True(t, errors.Is(e.CursorGoTo(core.At(-1, 0)), core.ErrInvalidArgument))
	assert.Zero(t, out.Len())
}

func TestEngineConcurrentUse(t *testing.T) {
	e := NewEngine(&bytes.Buffer{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := e.CreateField(4, 4)
			if !assert.NoError(t, err) {
				return
			}
			p, err := e.CreatePawn(h, "P", style, core.At(0, 0))
			if !assert.NoError(t, err) {
				return
			}
			_, err = e.ScheduleSwap(h, p, core.At(3, 3))
			assert.NoError(t, err)
			_, err = e.ApplySwaps(h)
			assert.NoError(t, err)
			assert.NoError(t, e.DestroyField(h))
		}()
	}
	wg.Wait()
}
