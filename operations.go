package orderedset

// Insert adds v to the set and reports whether it was added. Inserting a
// value that is already present leaves the set unchanged and returns
// false. Existing cursors remain valid.
func (s *Set[T]) Insert(v T) bool {
	var preds [MaxLevel + 1]*node[T]
	candidate := s.search(v, &preds)
	if matches(candidate, v) {
		return false
	}

	height := s.sampler.randomHeight()
	if height > s.level {
		for i := s.level + 1; i <= height; i++ {
			preds[i] = s.head
		}
		s.level = height
	}

	n := s.acquireNode(v, height)
	for i := 0; i <= height; i++ {
		n.forward[i] = preds[i].forward[i]
		preds[i].forward[i] = n
	}
	s.size++
	return true
}

// Delete removes v from the set and reports whether it was present.
// Cursors positioned at the removed element are invalidated; all others
// remain valid.
func (s *Set[T]) Delete(v T) bool {
	var preds [MaxLevel + 1]*node[T]
	target := s.search(v, &preds)
	if !matches(target, v) {
		return false
	}

	for i := 0; i <= s.level; i++ {
		if preds[i].forward[i] != target {
			// No level above this one links to the target.
			break
		}
		preds[i].forward[i] = target.forward[i]
	}

	for s.level > 0 && s.head.forward[s.level] == nil {
		s.level--
	}
	s.size--
	s.releaseNode(target)
	return true
}
