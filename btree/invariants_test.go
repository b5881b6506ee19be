package btree

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCheckAfterShuffledInserts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := NewOrdered[int]()
	for _, v := range rng.Perm(500) {
		tree.Insert(v)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after shuffled inserts: %v", err)
	}
	if tree.Len() != 500 {
		t.Errorf("Len = %d, want 500", tree.Len())
	}
}

func TestCheckDetectsOverfullLeaf(t *testing.T) {
	tree := NewOrdered[int]()
	tree.root = &leafNode[int]{values: []int{1, 2, 3}}
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Errorf("expected ErrCorruptTree for overfull leaf, got %v", err)
	}
}

func TestCheckDetectsUnsortedLeaf(t *testing.T) {
	tree := NewOrdered[int]()
	tree.root = &leafNode[int]{values: []int{2, 1}}
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Errorf("expected ErrCorruptTree for unsorted leaf, got %v", err)
	}
}

func TestCheckDetectsStaleCount(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 6 {
		tree.Insert(v)
	}
	root := tree.root.(*subtreeNode[int])
	root.count++ // simulate a lost count update
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Errorf("expected ErrCorruptTree for stale cached count, got %v", err)
	}
}

func TestCheckDetectsBrokenPartition(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 6 {
		tree.Insert(v)
	}
	lf := tree.lastLeaf()
	lf.values[0] = -1 // value below every separator key, leaf still sorted
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Errorf("expected ErrCorruptTree for broken partition, got %v", err)
	}
}

func TestCheckDetectsBrokenChain(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 6 {
		tree.Insert(v)
	}
	tree.firstLeaf().next = nil
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Errorf("expected ErrCorruptTree for severed chain, got %v", err)
	}
}

func TestCheckDetectsDanglingParent(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 6 {
		tree.Insert(v)
	}
	tree.firstLeaf().parent = nil
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Errorf("expected ErrCorruptTree for dangling parent link, got %v", err)
	}
}

func TestWalkVisitsAllNodes(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 8 {
		tree.Insert(v)
	}
	var leafValues []int
	internals := 0
	tree.Walk(func(info NodeInfo[int]) bool {
		if info.Leaf {
			leafValues = append(leafValues, info.Values...)
		} else {
			internals++
		}
		return true
	})
	if len(leafValues) != 8 {
		t.Fatalf("walk collected %d leaf values, want 8", len(leafValues))
	}
	if internals == 0 {
		t.Errorf("walk visited no internal nodes on a split tree")
	}
	// Pre-order walk over in-order children keeps leaf values sorted.
	for i := 1; i < len(leafValues); i++ {
		if leafValues[i-1] > leafValues[i] {
			t.Fatalf("walk leaf values out of order: %v", leafValues)
		}
	}
}

func TestWalkEarlyStop(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 8 {
		tree.Insert(v)
	}
	visited := 0
	tree.Walk(func(info NodeInfo[int]) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("walk visited %d nodes, want stop after 2", visited)
	}
}
