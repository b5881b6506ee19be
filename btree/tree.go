package btree

import "cmp"

// Tree is a mutable sorted multiset backed by a 2-3 search tree.
//
// T is the stored value type, totally ordered by the configured compare
// function. Duplicate values are kept with multiplicity.
type Tree[T any] struct {
	cfg  Config[T]
	root treeNode[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree over a naturally ordered value type.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	tree, err := New(Ordered[T]())
	assert(err == nil, "NewOrdered: default configuration must validate")
	return tree
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of stored values, counting duplicates.
func (t *Tree[T]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.valueCount()
}

// First returns the minimum value, or false for an empty tree.
func (t *Tree[T]) First() (T, bool) {
	var zero T
	lf := t.firstLeaf()
	if lf == nil {
		return zero, false
	}
	return lf.values[0], true
}

// Last returns the maximum value, or false for an empty tree.
func (t *Tree[T]) Last() (T, bool) {
	var zero T
	lf := t.lastLeaf()
	if lf == nil {
		return zero, false
	}
	return lf.values[len(lf.values)-1], true
}

// firstLeaf descends along first children to the head of the leaf chain.
func (t *Tree[T]) firstLeaf() *leafNode[T] {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for !n.isLeaf() {
		n = n.(*subtreeNode[T]).children[0]
	}
	return n.(*leafNode[T])
}

// lastLeaf descends along last children to the tail of the leaf chain.
func (t *Tree[T]) lastLeaf() *leafNode[T] {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for !n.isLeaf() {
		s := n.(*subtreeNode[T])
		n = s.children[len(s.children)-1]
	}
	return n.(*leafNode[T])
}
