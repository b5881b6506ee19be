package btree

// treeNode is the closed variant type for tree nodes. Exactly two concrete
// types implement it: leafNode and subtreeNode.
type treeNode[T any] interface {
	isLeaf() bool
	parentNode() *subtreeNode[T]
	setParent(p *subtreeNode[T])
	valueCount() int
}

// leafNode holds 1–2 values in ascending order, plus chain links to its
// sorted neighbor leaves. During an insertion a leaf transiently holds a
// third value until the split completes.
type leafNode[T any] struct {
	values []T
	parent *subtreeNode[T]
	next   *leafNode[T]
	prev   *leafNode[T]
}

func (l *leafNode[T]) isLeaf() bool                { return true }
func (l *leafNode[T]) parentNode() *subtreeNode[T] { return l.parent }
func (l *leafNode[T]) setParent(p *subtreeNode[T]) { l.parent = p }
func (l *leafNode[T]) valueCount() int             { return len(l.values) }

// subtreeNode holds 2–3 children, one separator key per child seam, and a
// cached count of all values reachable through it. During an insertion it
// transiently holds a fourth child and a third key until the split completes.
type subtreeNode[T any] struct {
	children []treeNode[T]
	keys     []T
	parent   *subtreeNode[T]
	count    int
}

func (s *subtreeNode[T]) isLeaf() bool                { return false }
func (s *subtreeNode[T]) parentNode() *subtreeNode[T] { return s.parent }
func (s *subtreeNode[T]) setParent(p *subtreeNode[T]) { s.parent = p }
func (s *subtreeNode[T]) valueCount() int             { return s.count }

// makeSubtree materializes an internal node over children, re-parenting them
// and summing the cached count from their counts.
func makeSubtree[T any](children []treeNode[T], keys []T, parent *subtreeNode[T]) *subtreeNode[T] {
	s := &subtreeNode[T]{
		children: append([]treeNode[T](nil), children...),
		keys:     append([]T(nil), keys...),
		parent:   parent,
	}
	for _, child := range s.children {
		assert(child != nil, "makeSubtree called with nil child")
		child.setParent(s)
		s.count += child.valueCount()
	}
	return s
}

// childSlot locates a node in its parent's child list by identity.
func childSlot[T any](parent *subtreeNode[T], child treeNode[T]) int {
	assert(parent != nil, "childSlot called with nil parent")
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	assert(false, "node not registered in its parent's child list")
	return -1
}

// insertAt inserts values into a slice at idx and returns a new slice.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// replaceWithTwo substitutes the child at slot by the pair left, right.
func replaceWithTwo[T any](children []treeNode[T], slot int, left, right treeNode[T]) []treeNode[T] {
	assert(slot >= 0 && slot < len(children), "replaceWithTwo slot out of range")
	out := make([]treeNode[T], 0, len(children)+1)
	out = append(out, children[:slot]...)
	out = append(out, left, right)
	out = append(out, children[slot+1:]...)
	return out
}
