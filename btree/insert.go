package btree

// Insert adds one value to the multiset. It always succeeds and grows Len()
// by exactly one; all structural invariants hold again when it returns.
func (t *Tree[T]) Insert(value T) {
	assert(t != nil, "Insert called on nil tree")
	if t.root == nil {
		t.root = &leafNode[T]{values: []T{value}}
		return
	}
	lf := t.leafFor(value)
	lf.values = insertAt(lf.values, t.sortedInsertSlot(lf.values, value), value)
	// One count bump per insertion, from the leaf's parent up to the root.
	// Split nodes created below recompute their counts from their children,
	// so the bump must happen before any structural change.
	for p := lf.parent; p != nil; p = p.parent {
		p.count++
	}
	if len(lf.values) <= maxLeafValues {
		return
	}
	t.splitLeaf(lf)
}

// splitLeaf divides an overfull leaf (exactly 3 values) into a left leaf
// with the smallest value and a right leaf with the remaining two, rewires
// the leaf chain, and promotes the middle value as a separator key.
func (t *Tree[T]) splitLeaf(lf *leafNode[T]) {
	assert(len(lf.values) == maxLeafValues+1, "splitLeaf expects transient leaf overflow")
	left := &leafNode[T]{
		values: []T{lf.values[0]},
		parent: lf.parent,
		prev:   lf.prev,
	}
	right := &leafNode[T]{
		values: append([]T(nil), lf.values[1:]...),
		parent: lf.parent,
		next:   lf.next,
		prev:   left,
	}
	left.next = right
	if lf.prev != nil {
		lf.prev.next = left
	}
	if lf.next != nil {
		lf.next.prev = right
	}
	mid := lf.values[1]
	if lf.parent == nil {
		t.root = makeSubtree[T]([]treeNode[T]{left, right}, []T{mid}, nil)
		return
	}
	parent := lf.parent
	parent.children = replaceWithTwo(parent.children, childSlot[T](parent, lf), left, right)
	t.insertSeparator(parent, mid)
}

// insertSeparator adds a promoted key to an internal node, splitting the
// node and promoting one level further on overflow.
func (t *Tree[T]) insertSeparator(s *subtreeNode[T], key T) {
	s.keys = insertAt(s.keys, t.sortedInsertSlot(s.keys, key), key)
	if len(s.keys) <= maxSeparatorKeys {
		return
	}
	// Transient overflow: 3 keys, 4 children. The first key and first two
	// children become the left sibling, the last key and last two children
	// the right one; the middle key moves up.
	assert(len(s.children) == maxChildren+1, "separator overflow requires four children")
	left := makeSubtree(s.children[:2], s.keys[:1], s.parent)
	right := makeSubtree(s.children[2:], s.keys[2:], s.parent)
	mid := s.keys[1]
	if s.parent == nil {
		t.root = makeSubtree[T]([]treeNode[T]{left, right}, []T{mid}, nil)
		return
	}
	parent := s.parent
	parent.children = replaceWithTwo(parent.children, childSlot[T](parent, s), left, right)
	t.insertSeparator(parent, mid)
}
