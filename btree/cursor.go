package btree

// Cursor is a double-ended traversal handle over the leaf chain.
//
// A cursor covers a contiguous range of values: Next consumes from the
// ascending end, Prev from the descending end. When the two ends meet, the
// met value is yielded exactly once and the cursor is exhausted. Cursors
// never observe internal tree structure, only the leaf chain.
//
// A cursor holds no lock. Mutating the tree while a cursor is alive leaves
// the cursor's future results undefined.
type Cursor[T any] struct {
	head    *leafNode[T]
	headIdx int
	tail    *leafNode[T]
	tailIdx int
	done    bool
}

// Iter returns a cursor over all values, positioned at the minimum.
func (t *Tree[T]) Iter() *Cursor[T] {
	return t.cursorAt(t.firstLeaf(), 0)
}

// Find returns a cursor positioned at the first value >= v in the leaf the
// routing rule descends to.
//
// The landed leaf is authoritative: if it holds no value >= v the cursor
// starts out exhausted, even when larger values live further down the
// chain. This mirrors the routing asymmetry (see routeChild) and is part
// of the compatibility contract.
func (t *Tree[T]) Find(v T) *Cursor[T] {
	if t == nil || t.root == nil {
		return &Cursor[T]{done: true}
	}
	lf := t.leafFor(v)
	for i, existing := range lf.values {
		if t.cfg.Compare(existing, v) >= 0 {
			return t.cursorAt(lf, i)
		}
	}
	return &Cursor[T]{done: true}
}

// cursorAt builds a cursor spanning from the given position to the last
// value in the tree.
func (t *Tree[T]) cursorAt(lf *leafNode[T], idx int) *Cursor[T] {
	if lf == nil {
		return &Cursor[T]{done: true}
	}
	assert(idx >= 0 && idx < len(lf.values), "cursorAt offset out of range")
	last := t.lastLeaf()
	return &Cursor[T]{
		head:    lf,
		headIdx: idx,
		tail:    last,
		tailIdx: len(last.values) - 1,
	}
}

// Next yields the value at the ascending end and advances past it.
func (c *Cursor[T]) Next() (T, bool) {
	var zero T
	if c == nil || c.done {
		return zero, false
	}
	v := c.head.values[c.headIdx]
	if c.head == c.tail && c.headIdx == c.tailIdx {
		c.done = true
		return v, true
	}
	if c.headIdx+1 < len(c.head.values) {
		c.headIdx++
	} else {
		c.head = c.head.next
		c.headIdx = 0
		if c.head == nil {
			c.done = true
		}
	}
	return v, true
}

// Prev yields the value at the descending end and retreats past it.
// Stepping into the previous leaf positions at its last valid offset.
func (c *Cursor[T]) Prev() (T, bool) {
	var zero T
	if c == nil || c.done {
		return zero, false
	}
	v := c.tail.values[c.tailIdx]
	if c.head == c.tail && c.headIdx == c.tailIdx {
		c.done = true
		return v, true
	}
	if c.tailIdx > 0 {
		c.tailIdx--
	} else {
		c.tail = c.tail.prev
		if c.tail == nil {
			c.done = true
		} else {
			c.tailIdx = len(c.tail.values) - 1
		}
	}
	return v, true
}

// Exhausted reports whether the cursor has no values left to yield.
func (c *Cursor[T]) Exhausted() bool {
	return c == nil || c.done
}
