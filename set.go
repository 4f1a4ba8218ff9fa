// Package orderedset provides an ordered in-memory set of unique elements
// backed by a probabilistic skip list. Insertion, deletion, and lookup run
// in expected O(log n); iteration visits elements in ascending order.
//
// A Set is not safe for concurrent use. Callers that share a set across
// goroutines must serialize access themselves.
package orderedset

import (
	"cmp"
	"sync"
)

// Set is an ordered set of unique values. The zero Set is not usable; use
// New or NewWithSeed.
type Set[T cmp.Ordered] struct {
	head    *node[T]
	level   int
	size    int
	sampler *levelSampler
	pool    sync.Pool
}

// New returns an empty set whose height sampler is seeded from the clock.
func New[T cmp.Ordered]() *Set[T] {
	return &Set[T]{
		head:    newHead[T](),
		sampler: newSampler(),
	}
}

// NewWithSeed returns an empty set with a deterministic height sampler.
// Structure (but not content or ordering) depends on the seed; intended for
// tests that need reproducible level profiles.
func NewWithSeed[T cmp.Ordered](seed uint64) *Set[T] {
	return &Set[T]{
		head:    newHead[T](),
		sampler: newSamplerWithSeed(seed),
	}
}

// search descends from the set's current level, recording into preds the
// rightmost node at each level whose value is strictly less than v. It
// returns the level-0 successor of preds[0], the only node that can hold v.
func (s *Set[T]) search(v T, preds *[MaxLevel + 1]*node[T]) *node[T] {
	x := s.head
	for i := s.level; i >= 0; i-- {
		for next := x.forward[i]; next != nil && cmp.Less(next.value, v); next = x.forward[i] {
			x = next
		}
		preds[i] = x
	}
	return x.forward[0]
}

// seek is the read-only form of search: same descent, no predecessor
// bookkeeping.
func (s *Set[T]) seek(v T) *node[T] {
	x := s.head
	for i := s.level; i >= 0; i-- {
		for x.forward[i] != nil && cmp.Less(x.forward[i].value, v) {
			x = x.forward[i]
		}
	}
	return x.forward[0]
}

// matches reports whether candidate holds a value equal to v. The search
// already established that candidate's value is not less than v, so
// equality reduces to v not being less than it.
func matches[T cmp.Ordered](candidate *node[T], v T) bool {
	return candidate != nil && !cmp.Less(v, candidate.value)
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.size
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool {
	return s.size == 0
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	return matches(s.seek(v), v)
}

// Clear removes every element. The sampler state is preserved, so a
// cleared set continues the same height sequence. All cursors into the set
// are invalidated.
func (s *Set[T]) Clear() {
	s.head = newHead[T]()
	s.level = 0
	s.size = 0
}

// Clone returns a new set with the same elements. The clone draws heights
// from a freshly seeded sampler, so its internal level profile is
// independent of the original's; iteration order is identical.
func (s *Set[T]) Clone() *Set[T] {
	out := New[T]()
	for n := s.head.forward[0]; n != nil; n = n.forward[0] {
		out.Insert(n.value)
	}
	return out
}

// Take transfers src's elements and sampler state into s, replacing
// whatever s held. src is left valid and empty with a freshly seeded
// sampler. s.Take(s) is a no-op. All cursors into either set are
// invalidated.
func (s *Set[T]) Take(src *Set[T]) {
	if s == src {
		return
	}
	s.head = src.head
	s.level = src.level
	s.size = src.size
	s.sampler = src.sampler
	src.head = newHead[T]()
	src.level = 0
	src.size = 0
	src.sampler = newSampler()
}
