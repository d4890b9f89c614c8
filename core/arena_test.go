package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaInsertGetRemove(t *testing.T) {
	a := NewArena[string]()
	h := a.Insert("pawn")
	require.False(t, h.IsZero())

	v, ok := a.Get(h)
	require.True(t, ok)
	assert.Equal(t, "pawn", v)
	assert.Equal(t, 1, a.Len())

	v, ok = a.Remove(h)
	require.True(t, ok)
	assert.Equal(t, "pawn", v)
	assert.Equal(t, 0, a.Len())
}

func TestArenaRejectsStaleHandles(t *testing.T) {
	a := NewArena[int]()
	old := a.Insert(1)
	a.Remove(old)

	// Slot is reused, but the old handle must not alias the new value
	fresh := a.Insert(2)
	assert.Equal(t, old.Index, fresh.Index)
	assert.NotEqual(t, old.Generation, fresh.Generation)

	_, ok := a.Get(old)
	assert.False(t, ok, "stale handle resolved")
	_, ok = a.Remove(old)
	assert.False(t, ok, "stale handle released")

	v, ok := a.Get(fresh)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestArenaDoubleRelease(t *testing.T) {
	a := NewArena[int]()
	h := a.Insert(1)
	_, ok := a.Remove(h)
	require.True(t, ok)
	_, ok = a.Remove(h)
	assert.False(t, ok)
	assert.Equal(t, 0, a.Len())
}

func TestArenaZeroAndUnknownHandles(t *testing.T) {
	a := NewArena[int]()
	_, ok := a.Get(Handle{})
	assert.False(t, ok)
	_, ok = a.Get(Handle{Index: 42, Generation: 1})
	assert.False(t, ok)
}

func TestArenaEach(t *testing.T) {
	a := NewArena[int]()
	h1 := a.Insert(10)
	h2 := a.Insert(20)
	h3 := a.Insert(30)
	a.Remove(h2)

	var got []Handle
	a.Each(func(h Handle, _ int) { got = append(got, h) })
	assert.Equal(t, []Handle{h1, h3}, got)
}
