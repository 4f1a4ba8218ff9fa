package orderedset

import (
	"cmp"
	"iter"
)

// Cursor is a single-pass forward position on a set's ordered chain. The
// zero Cursor is the end cursor. Cursors are values: advance with Next,
// compare with ==. Two cursors are equal iff they observe the same
// element (all end cursors are equal).
//
// A cursor is invalidated when the element it observes is deleted, and by
// Clear and Take. Insertion never invalidates a cursor.
type Cursor[T cmp.Ordered] struct {
	n *node[T]
}

// Valid reports whether the cursor observes an element.
func (c Cursor[T]) Valid() bool {
	return c.n != nil
}

// Value returns the element the cursor observes. It panics if called on
// the end cursor.
func (c Cursor[T]) Value() T {
	if c.n == nil {
		panic("orderedset: Value called on end cursor")
	}
	return c.n.value
}

// Next returns a cursor at the following element, or the end cursor when
// the chain is exhausted. Advancing the end cursor yields the end cursor.
func (c Cursor[T]) Next() Cursor[T] {
	if c.n == nil {
		return c
	}
	return Cursor[T]{n: c.n.forward[0]}
}

// Begin returns a cursor at the smallest element, or the end cursor if the
// set is empty.
func (s *Set[T]) Begin() Cursor[T] {
	return Cursor[T]{n: s.head.forward[0]}
}

// End returns the end cursor.
func (s *Set[T]) End() Cursor[T] {
	return Cursor[T]{}
}

// Find returns a cursor at v, or the end cursor if v is not present.
func (s *Set[T]) Find(v T) Cursor[T] {
	if candidate := s.seek(v); matches(candidate, v) {
		return Cursor[T]{n: candidate}
	}
	return Cursor[T]{}
}

// All returns an iterator over the elements in ascending order. The set
// must not be mutated during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head.forward[0]; n != nil; n = n.forward[0] {
			if !yield(n.value) {
				return
			}
		}
	}
}
