package btree

import "iter"

// ForEach walks all values in ascending order along the leaf chain.
//
// Iteration stops early if the callback returns false.
func (t *Tree[T]) ForEach(fn func(v T) bool) {
	if t == nil || fn == nil {
		return
	}
	for lf := t.firstLeaf(); lf != nil; lf = lf.next {
		for _, v := range lf.values {
			if !fn(v) {
				return
			}
		}
	}
}

// ForEachBackward walks all values in descending order along the leaf chain.
func (t *Tree[T]) ForEachBackward(fn func(v T) bool) {
	if t == nil || fn == nil {
		return
	}
	for lf := t.lastLeaf(); lf != nil; lf = lf.prev {
		for i := len(lf.values) - 1; i >= 0; i-- {
			if !fn(lf.values[i]) {
				return
			}
		}
	}
}

// All returns an iterator over all values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEach(yield)
	}
}

// Backward returns an iterator over all values in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachBackward(yield)
	}
}

// Extend inserts every value of a finite sequence, one at a time.
func (t *Tree[T]) Extend(values iter.Seq[T]) {
	if values == nil {
		return
	}
	for v := range values {
		t.Insert(v)
	}
}

// FromSeq builds a tree from a finite value sequence by repeated insertion.
func FromSeq[T any](cfg Config[T], values iter.Seq[T]) (*Tree[T], error) {
	tree, err := New(cfg)
	if err != nil {
		return nil, err
	}
	tree.Extend(values)
	return tree, nil
}
