package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it verifies
// occupancy bounds, key ordering, separator partitioning, parent
// back-references, cached counts and the leaf chain. A failure indicates a
// bug in the insertion engine, never caller misuse.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if t.root == nil {
		return nil
	}
	if t.root.parentNode() != nil {
		return fmt.Errorf("%w: root must have no parent", ErrCorruptTree)
	}
	var leaves []*leafNode[T]
	count, _, err := t.checkNode(t.root, nil, &leaves)
	if err != nil {
		return err
	}
	if count != t.root.valueCount() {
		return fmt.Errorf("%w: root count %d != recursive count %d",
			ErrCorruptTree, t.root.valueCount(), count)
	}
	return t.checkChain(leaves)
}

func (t *Tree[T]) checkNode(n treeNode[T], parent *subtreeNode[T], leaves *[]*leafNode[T]) (count int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrCorruptTree)
	}
	if n.parentNode() != parent {
		return 0, 0, fmt.Errorf("%w: dangling parent back-reference", ErrCorruptTree)
	}
	if n.isLeaf() {
		lf := n.(*leafNode[T])
		if len(lf.values) < 1 || len(lf.values) > maxLeafValues {
			return 0, 0, fmt.Errorf("%w: leaf holds %d values", ErrCorruptTree, len(lf.values))
		}
		for i := 1; i < len(lf.values); i++ {
			if t.cfg.Compare(lf.values[i-1], lf.values[i]) > 0 {
				return 0, 0, fmt.Errorf("%w: leaf values out of order", ErrCorruptTree)
			}
		}
		*leaves = append(*leaves, lf)
		return len(lf.values), 1, nil
	}
	s := n.(*subtreeNode[T])
	if len(s.children) < 2 || len(s.children) > maxChildren {
		return 0, 0, fmt.Errorf("%w: internal node has %d children", ErrCorruptTree, len(s.children))
	}
	if len(s.keys) != len(s.children)-1 {
		return 0, 0, fmt.Errorf("%w: %d separator keys for %d children",
			ErrCorruptTree, len(s.keys), len(s.children))
	}
	for i := 1; i < len(s.keys); i++ {
		if t.cfg.Compare(s.keys[i-1], s.keys[i]) > 0 {
			return 0, 0, fmt.Errorf("%w: separator keys out of order", ErrCorruptTree)
		}
	}
	var childHeight int
	for i, child := range s.children {
		cCount, cHeight, cErr := t.checkNode(child, s, leaves)
		if cErr != nil {
			return 0, 0, cErr
		}
		count += cCount
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrCorruptTree)
		}
		if err := t.checkPartition(s, i, child); err != nil {
			return 0, 0, err
		}
	}
	if count != s.count {
		return 0, 0, fmt.Errorf("%w: cached count %d != recursive count %d",
			ErrCorruptTree, s.count, count)
	}
	return count, childHeight + 1, nil
}

// checkPartition verifies that separator key i bounds children i and i+1:
// values left of a key never exceed it, values right of a key never fall
// below it.
func (t *Tree[T]) checkPartition(s *subtreeNode[T], i int, child treeNode[T]) error {
	lo, hi := subtreeBounds(child)
	if i < len(s.keys) && t.cfg.Compare(hi, s.keys[i]) > 0 {
		return fmt.Errorf("%w: child %d exceeds its separator key", ErrCorruptTree, i)
	}
	if i > 0 && t.cfg.Compare(lo, s.keys[i-1]) < 0 {
		return fmt.Errorf("%w: child %d falls below its separator key", ErrCorruptTree, i)
	}
	return nil
}

// subtreeBounds returns the smallest and largest value under n.
func subtreeBounds[T any](n treeNode[T]) (lo T, hi T) {
	first := n
	for !first.isLeaf() {
		first = first.(*subtreeNode[T]).children[0]
	}
	last := n
	for !last.isLeaf() {
		s := last.(*subtreeNode[T])
		last = s.children[len(s.children)-1]
	}
	lf, ll := first.(*leafNode[T]), last.(*leafNode[T])
	return lf.values[0], ll.values[len(ll.values)-1]
}

// checkChain verifies that the leaf chain links exactly the in-order leaves
// and yields globally non-decreasing values in both directions.
func (t *Tree[T]) checkChain(leaves []*leafNode[T]) error {
	if len(leaves) == 0 {
		return fmt.Errorf("%w: non-empty tree without leaves", ErrCorruptTree)
	}
	if t.firstLeaf() != leaves[0] || t.lastLeaf() != leaves[len(leaves)-1] {
		return fmt.Errorf("%w: chain endpoints disagree with tree order", ErrCorruptTree)
	}
	if leaves[0].prev != nil || leaves[len(leaves)-1].next != nil {
		return fmt.Errorf("%w: chain ends must be unlinked", ErrCorruptTree)
	}
	for i, lf := range leaves {
		if i > 0 {
			if leaves[i-1].next != lf || lf.prev != leaves[i-1] {
				return fmt.Errorf("%w: broken chain link at leaf %d", ErrCorruptTree, i)
			}
			prev := leaves[i-1]
			if t.cfg.Compare(prev.values[len(prev.values)-1], lf.values[0]) > 0 {
				return fmt.Errorf("%w: chain order violation at leaf %d", ErrCorruptTree, i)
			}
		}
	}
	return nil
}
