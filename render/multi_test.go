package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/terminal"
)

type errRenderer struct{ err error }

func (e errRenderer) Draw([]Cell) error { return e.err }

func TestMultiRendererFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi(a, nil, b)

	cells := []Cell{{At: core.At(0, 1), Symbol: "x", Style: terminal.DefaultSettings}}
	require.NoError(t, m.Draw(cells))
	assert.Equal(t, cells, a.Last())
	assert.Equal(t, cells, b.Last())
}

func TestMultiRendererJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	rec := NewRecorder()
	m := Multi(errRenderer{boom}, rec)

	err := m.Draw([]Cell{Blank(core.Origin)})
	assert.True(t, errors.Is(err, boom))
	assert.Len(t, rec.Batches, 1, "later renderers still receive the batch")
}

func TestRecorderScreenImage(t *testing.T) {
	rec := NewRecorder()
	rec.Draw([]Cell{{At: core.At(1, 1), Symbol: "P", Style: terminal.DefaultSettings}})
	c, ok := rec.CellAt(core.At(1, 1))
	require.True(t, ok)
	assert.Equal(t, "P", c.Symbol)

	rec.Draw([]Cell{Blank(core.At(1, 1))})
	_, ok = rec.CellAt(core.At(1, 1))
	assert.False(t, ok)

	rec.Reset()
	assert.Nil(t, rec.Last())
}
