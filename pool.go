package orderedset

// Nodes removed by Delete are scrubbed and recycled through a per-set
// sync.Pool so that churny workloads reuse storage instead of allocating.
// Clear does not feed the pool: dropped chains may still be observed by
// stale cursors, so they are left to the garbage collector.

func (s *Set[T]) acquireNode(value T, height int) *node[T] {
	n, _ := s.pool.Get().(*node[T])
	if n == nil {
		return newNode(value, height)
	}

	links := height + 1
	if cap(n.forward) < links {
		n.forward = make([]*node[T], links)
	} else {
		n.forward = n.forward[:links]
		clear(n.forward)
	}
	n.value = value
	return n
}

func (s *Set[T]) releaseNode(n *node[T]) {
	if n == nil || n == s.head {
		return
	}

	var zero T
	n.value = zero
	clear(n.forward)
	s.pool.Put(n)
}
