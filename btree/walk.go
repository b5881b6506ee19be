package btree

// NodeInfo describes one node during a structural walk. Leaf nodes carry
// their values, internal nodes their separator keys.
type NodeInfo[T any] struct {
	Depth  int
	Leaf   bool
	Values []T
	Count  int
}

// Walk visits every node in depth-first pre-order, children left to right.
//
// The visitor receives copies of values/keys; it cannot mutate the tree.
// Walking stops early if the visitor returns false. Walk exists for
// debugging, visualization and tests. Ordered consumption of values should
// use ForEach or a Cursor instead.
func (t *Tree[T]) Walk(visit func(info NodeInfo[T]) bool) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	t.walkNode(t.root, 0, visit)
}

func (t *Tree[T]) walkNode(n treeNode[T], depth int, visit func(info NodeInfo[T]) bool) bool {
	assert(n != nil, "walkNode called with nil node")
	if n.isLeaf() {
		lf := n.(*leafNode[T])
		return visit(NodeInfo[T]{
			Depth:  depth,
			Leaf:   true,
			Values: append([]T(nil), lf.values...),
			Count:  len(lf.values),
		})
	}
	s := n.(*subtreeNode[T])
	if !visit(NodeInfo[T]{
		Depth:  depth,
		Values: append([]T(nil), s.keys...),
		Count:  s.count,
	}) {
		return false
	}
	for _, child := range s.children {
		if !t.walkNode(child, depth+1, visit) {
			return false
		}
	}
	return true
}
