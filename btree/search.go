package btree

// routeChild selects the child to descend into for value v.
//
// The routing rule is a compatibility contract, asymmetric on purpose: with
// one separator key, values equal to the key route to the right child; with
// two keys, the middle child receives only values strictly between them, so
// a value equal to either key routes to child 2. Do not "repair" the
// asymmetry, split promotion and point search rely on the same rule.
func (t *Tree[T]) routeChild(s *subtreeNode[T], v T) int {
	assert(s != nil, "routeChild called with nil subtree")
	switch len(s.keys) {
	case 1:
		if t.cfg.Compare(v, s.keys[0]) < 0 {
			return 0
		}
		return 1
	case 2:
		if t.cfg.Compare(v, s.keys[0]) < 0 {
			return 0
		}
		if t.cfg.Compare(v, s.keys[0]) > 0 && t.cfg.Compare(v, s.keys[1]) < 0 {
			return 1
		}
		return 2
	}
	assert(false, "separator key count out of range")
	return -1
}

// leafFor descends from the root to the leaf that would contain v.
func (t *Tree[T]) leafFor(v T) *leafNode[T] {
	assert(t.root != nil, "leafFor called on empty tree")
	n := t.root
	for !n.isLeaf() {
		s := n.(*subtreeNode[T])
		n = s.children[t.routeChild(s, v)]
	}
	return n.(*leafNode[T])
}

// sortedInsertSlot returns the slot where v keeps values sorted, placing v
// after any equal values already present.
func (t *Tree[T]) sortedInsertSlot(values []T, v T) int {
	for i, existing := range values {
		if t.cfg.Compare(v, existing) < 0 {
			return i
		}
	}
	return len(values)
}
