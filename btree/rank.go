package btree

// At returns the value at the given 0-based rank in ascending order,
// counting duplicates with multiplicity. Ranks outside [0, Len()) yield
// ErrRankOutOfBounds.
func (t *Tree[T]) At(rank int) (T, error) {
	var zero T
	if t == nil || t.root == nil || rank < 0 || rank >= t.Len() {
		return zero, ErrRankOutOfBounds
	}
	return t.atNode(t.root, rank), nil
}

// atNode routes a rank through cached child counts down to a leaf offset.
func (t *Tree[T]) atNode(n treeNode[T], rank int) T {
	assert(n != nil, "atNode called with nil node")
	if n.isLeaf() {
		lf := n.(*leafNode[T])
		assert(rank >= 0 && rank < len(lf.values), "atNode leaf offset out of range")
		return lf.values[rank]
	}
	s := n.(*subtreeNode[T])
	remaining := rank
	for _, child := range s.children {
		if remaining < child.valueCount() {
			return t.atNode(child, remaining)
		}
		remaining -= child.valueCount()
	}
	assert(false, "atNode rank routing exceeded subtree count")
	var zero T
	return zero
}
