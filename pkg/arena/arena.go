// Package arena provides a slot-recycling store that issues stable
// integer identities for values.
//
// An Arena keeps its values in a growable buffer of slots. Removing a
// value frees its slot; freed slots are tracked in ascending order and
// the smallest one is reused by the next Insert. When the highest
// occupied slot is removed the buffer truncates, cascading through any
// holes that become trailing, so a hole never survives at the end of
// the buffer. Ids handed out by Insert stay valid exactly until the
// matching Remove.
package arena

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ID identifies a value within an Arena.
type ID = int

type slot[T any] struct {
	value    T
	occupied bool
}

// Arena is a slot-recycling store. The zero value is an empty arena
// ready for use.
//
// Pointers returned by Get are valid until the next Insert or Remove;
// callers must not hold them across mutations.
type Arena[T any] struct {
	buffer []slot[T]
	free   []ID // ascending
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores value and returns its id. The smallest free slot is
// reused when one exists; otherwise the buffer grows by one.
func (a *Arena[T]) Insert(value T) ID {
	if len(a.free) > 0 {
		id := a.free[0]
		a.free = a.free[1:]
		a.buffer[id] = slot[T]{value: value, occupied: true}
		return id
	}
	id := len(a.buffer)
	a.buffer = append(a.buffer, slot[T]{value: value, occupied: true})
	return id
}

// Get returns a pointer to the value stored under id, or false when the
// id is out of range or its slot is free.
func (a *Arena[T]) Get(id ID) (*T, bool) {
	if id < 0 || id >= len(a.buffer) || !a.buffer[id].occupied {
		return nil, false
	}
	return &a.buffer[id].value, true
}

// Remove frees the slot under id and returns the value it held, or
// false when the id is out of range or already free.
func (a *Arena[T]) Remove(id ID) (T, bool) {
	var zero T
	if id < 0 || id >= len(a.buffer) || !a.buffer[id].occupied {
		return zero, false
	}
	value := a.buffer[id].value
	a.buffer[id] = slot[T]{}
	a.recycle(id)
	return value, true
}

// recycle returns a freed slot to the pool. Freeing the last slot
// truncates the buffer instead, and keeps truncating while the new last
// slot is a hole, dropping those holes from the free list as it goes.
func (a *Arena[T]) recycle(id ID) {
	if id != len(a.buffer)-1 {
		at, _ := slices.BinarySearch(a.free, id)
		a.free = slices.Insert(a.free, at, id)
		return
	}
	a.buffer = a.buffer[:len(a.buffer)-1]
	for len(a.buffer) > 0 && !a.buffer[len(a.buffer)-1].occupied {
		a.buffer = a.buffer[:len(a.buffer)-1]
		a.free = a.free[:len(a.free)-1]
	}
}

// Count returns the number of occupied slots.
func (a *Arena[T]) Count() int {
	return len(a.buffer) - len(a.free)
}

// Len returns the buffer span: one past the highest occupied id.
// Interior holes count toward the span; trailing holes cannot exist.
func (a *Arena[T]) Len() int {
	return len(a.buffer)
}

// All returns an iterator over (id, value) pairs in ascending id order,
// skipping free slots. Each call starts a fresh pass.
func (a *Arena[T]) All() iter.Seq2[ID, T] {
	return func(yield func(ID, T) bool) {
		for id := range a.buffer {
			if !a.buffer[id].occupied {
				continue
			}
			if !yield(id, a.buffer[id].value) {
				return
			}
		}
	}
}

// Values returns an iterator over values in ascending id order.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := range a.buffer {
			if a.buffer[id].occupied && !yield(a.buffer[id].value) {
				return
			}
		}
	}
}

// IDs returns an iterator over occupied ids in ascending order.
func (a *Arena[T]) IDs() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for id := range a.buffer {
			if a.buffer[id].occupied && !yield(id) {
				return
			}
		}
	}
}

// EqualFunc reports whether two arenas hold equal values in identical
// slots, comparing values with eq. Because trailing holes are always
// truncated away, hole-for-hole buffer equality is exactly the
// "equal ignoring trailing holes" relation.
func (a *Arena[T]) EqualFunc(b *Arena[T], eq func(x, y T) bool) bool {
	if len(a.buffer) != len(b.buffer) {
		return false
	}
	for id := range a.buffer {
		if a.buffer[id].occupied != b.buffer[id].occupied {
			return false
		}
		if a.buffer[id].occupied && !eq(a.buffer[id].value, b.buffer[id].value) {
			return false
		}
	}
	return true
}

// Equal reports whether two arenas of comparable values are equal under
// the same relation as [Arena.EqualFunc].
func Equal[T comparable](a, b *Arena[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// String renders the buffer with holes shown as underscores, e.g.
// "[1, _, 3, 4]". The free list is omitted.
func (a *Arena[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for id := range a.buffer {
		if id > 0 {
			sb.WriteString(", ")
		}
		if a.buffer[id].occupied {
			fmt.Fprintf(&sb, "%v", a.buffer[id].value)
		} else {
			sb.WriteByte('_')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
