package core

import "fmt"

// Handle is a generation-checked index into an Arena
// The zero Handle is never issued, so it always reads as absent
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h is the absent handle
func (h Handle) IsZero() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.Index, h.Generation)
}

type slot[T any] struct {
	value      T
	generation uint32 // Odd while occupied, even while free
}

// Arena owns values addressed by Handles
// Releasing a slot bumps its generation, so stale and double-released
// handles are rejected instead of aliasing a newer value
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena creates an empty arena
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.generation++
	s.value = v
	a.live++
	return Handle{Index: idx, Generation: s.generation}
}

// Get returns the value for h, false when h is stale or unknown
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if !a.valid(h) {
		return zero, false
	}
	return a.slots[h.Index].value, true
}

// Remove releases h and returns its value, false when h is stale or unknown
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	if !a.valid(h) {
		return zero, false
	}
	s := &a.slots[h.Index]
	v := s.value
	s.value = zero
	s.generation++
	a.free = append(a.free, h.Index)
	a.live--
	return v, true
}

// Len returns the number of live values
func (a *Arena[T]) Len() int {
	return a.live
}

// Each visits live values in slot order
func (a *Arena[T]) Each(fn func(h Handle, v T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.generation%2 == 1 {
			fn(Handle{Index: uint32(i), Generation: s.generation}, s.value)
		}
	}
}

func (a *Arena[T]) valid(h Handle) bool {
	if h.IsZero() || int(h.Index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.Index]
	return s.generation == h.Generation && s.generation%2 == 1
}
