package orderedset

import "cmp"

const (
	// MaxLevel is the highest level index a node may occupy. A node of
	// height MaxLevel carries MaxLevel+1 forward links.
	MaxLevel = 32

	// P is the per-trial promotion probability used when sampling node
	// heights.
	P = 0.25
)

// node holds a value and one forward link per occupied level. A nil link
// means the node is the last one at that level. The head sentinel keeps a
// zero value and a full complement of MaxLevel+1 links.
type node[T cmp.Ordered] struct {
	value   T
	forward []*node[T]
}

func newNode[T cmp.Ordered](value T, height int) *node[T] {
	return &node[T]{
		value:   value,
		forward: make([]*node[T], height+1),
	}
}

func newHead[T cmp.Ordered]() *node[T] {
	var zero T
	return newNode(zero, MaxLevel)
}
