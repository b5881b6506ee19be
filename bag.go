package ordbag

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordbag/btree"
)

// Bag stores an ordered multiset of values in a leaf-chained 2-3 tree.
//
// Bags are created with New or NewWith. Methods that take or return ranks
// use 0-based positions in the bag's global ascending order.
//
// Insertion never fails and keeps duplicates with multiplicity. There is no
// way to remove a value.
type Bag[T any] struct {
	tree *btree.Tree[T]
}

// New creates an empty bag over a naturally ordered value type.
func New[T cmp.Ordered]() *Bag[T] {
	return &Bag[T]{tree: btree.NewOrdered[T]()}
}

// NewWith creates an empty bag ordered by an explicit compare function.
func NewWith[T any](compare func(a, b T) int) (*Bag[T], error) {
	if compare == nil {
		return nil, ErrNoComparator
	}
	tree, err := btree.New(btree.Config[T]{Compare: compare})
	if err != nil {
		return nil, err
	}
	return &Bag[T]{tree: tree}, nil
}

// Collect builds a bag from a finite value sequence.
func Collect[T cmp.Ordered](values iter.Seq[T]) *Bag[T] {
	bag := New[T]()
	bag.Extend(values)
	return bag
}

// Insert adds one value to the bag. Duplicates are kept.
func (b *Bag[T]) Insert(value T) {
	b.tree.Insert(value)
}

// InsertAll adds every given value to the bag.
func (b *Bag[T]) InsertAll(values ...T) {
	for _, v := range values {
		b.tree.Insert(v)
	}
}

// Extend adds every value of a finite sequence to the bag.
func (b *Bag[T]) Extend(values iter.Seq[T]) {
	b.tree.Extend(values)
}

// Len returns the number of values in the bag, counting duplicates.
func (b *Bag[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.tree.Len()
}

// IsEmpty reports whether the bag holds no values.
func (b *Bag[T]) IsEmpty() bool {
	return b == nil || b.tree.IsEmpty()
}

// First returns the minimum value, or false for an empty bag.
func (b *Bag[T]) First() (T, bool) {
	return b.tree.First()
}

// Last returns the maximum value, or false for an empty bag.
func (b *Bag[T]) Last() (T, bool) {
	return b.tree.Last()
}

// At returns the value at a 0-based rank in ascending order, or false if
// the rank is at or beyond Len().
func (b *Bag[T]) At(rank int) (T, bool) {
	v, err := b.tree.At(rank)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Find returns a cursor positioned at the first value >= v, or an exhausted
// cursor if no such value exists.
func (b *Bag[T]) Find(v T) *btree.Cursor[T] {
	return b.tree.Find(v)
}

// Iter returns a cursor over all values, positioned at the minimum.
func (b *Bag[T]) Iter() *btree.Cursor[T] {
	return b.tree.Iter()
}

// Values returns an iterator over all values in ascending order.
func (b *Bag[T]) Values() iter.Seq[T] {
	return b.tree.All()
}

// Backward returns an iterator over all values in descending order.
func (b *Bag[T]) Backward() iter.Seq[T] {
	return b.tree.Backward()
}

// Tree exposes the backing tree for tooling (visualization, validation,
// benchmarks). Clients should not normally need it.
func (b *Bag[T]) Tree() *btree.Tree[T] {
	return b.tree
}
