package btree

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing compare function, got %v", err)
	}
}

func TestNewStoresCompareConfig(t *testing.T) {
	tree, err := New(Ordered[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := tree.Config()
	if cfg.Compare == nil {
		t.Fatalf("expected compare function to be set in normalized config")
	}
}

func TestEmptyTree(t *testing.T) {
	tree := NewOrdered[int]()
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("unexpected empty tree state len=%d", tree.Len())
	}
	if _, ok := tree.First(); ok {
		t.Errorf("expected First to report absence on empty tree")
	}
	if _, ok := tree.Last(); ok {
		t.Errorf("expected Last to report absence on empty tree")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
}

func TestInsertSingleValue(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(42)
	if tree.Len() != 1 {
		t.Fatalf("unexpected length %d", tree.Len())
	}
	lf, ok := tree.root.(*leafNode[int])
	if !ok {
		t.Fatalf("expected single-leaf root")
	}
	if lf.parent != nil || lf.next != nil || lf.prev != nil {
		t.Errorf("root leaf must be unlinked")
	}
	if first, _ := tree.First(); first != 42 {
		t.Errorf("First = %d, want 42", first)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after single insert: %v", err)
	}
}

func TestRootLeafSplit(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(0)
	tree.Insert(1)
	tree.Insert(2) // third value splits the root leaf
	root, ok := tree.root.(*subtreeNode[int])
	if !ok {
		t.Fatalf("expected internal root after overflow")
	}
	if len(root.children) != 2 || len(root.keys) != 1 || root.keys[0] != 1 {
		t.Fatalf("unexpected root shape: %d children, keys %v", len(root.children), root.keys)
	}
	left := root.children[0].(*leafNode[int])
	right := root.children[1].(*leafNode[int])
	if left.next != right || right.prev != left {
		t.Errorf("leaf chain not rewired across split")
	}
	if left.parent != root || right.parent != root {
		t.Errorf("split leaves not re-parented to new root")
	}
	if root.count != 3 {
		t.Errorf("root count = %d, want 3", root.count)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after root split: %v", err)
	}
}

func TestSplitCascadeShape(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 4 {
		tree.Insert(v)
	}
	// 0,1 fill the root leaf; 2 splits it ([0] | key 1 | [1,2]); 3 overflows
	// the right leaf into [1] | key 2 | [2,3] under the same root.
	root, ok := tree.root.(*subtreeNode[int])
	if !ok {
		t.Fatalf("expected internal root")
	}
	if len(root.keys) != 2 || root.keys[0] != 1 || root.keys[1] != 2 {
		t.Fatalf("unexpected separator keys %v", root.keys)
	}
	wantLeaves := [][]int{{0}, {1}, {2, 3}}
	for i, child := range root.children {
		lf := child.(*leafNode[int])
		if len(lf.values) != len(wantLeaves[i]) {
			t.Fatalf("leaf %d holds %v, want %v", i, lf.values, wantLeaves[i])
		}
		for j, v := range wantLeaves[i] {
			if lf.values[j] != v {
				t.Fatalf("leaf %d holds %v, want %v", i, lf.values, wantLeaves[i])
			}
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after cascade: %v", err)
	}
}

func TestInternalSplitGrowsHeight(t *testing.T) {
	tree := NewOrdered[int]()
	for v := range 10 {
		tree.Insert(v)
	}
	if tree.root.isLeaf() {
		t.Fatalf("expected internal root")
	}
	if _, ok := tree.root.(*subtreeNode[int]).children[0].(*subtreeNode[int]); !ok {
		t.Fatalf("expected tree of height >= 3 after 10 ascending inserts")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after internal splits: %v", err)
	}
	if tree.Len() != 10 {
		t.Errorf("Len = %d, want 10", tree.Len())
	}
}

func TestFirstAndLast(t *testing.T) {
	tree := NewOrdered[int]()
	for _, v := range []int{5, -3, 12, 0, 7, -3} {
		tree.Insert(v)
	}
	if first, ok := tree.First(); !ok || first != -3 {
		t.Errorf("First = %d, want -3", first)
	}
	if last, ok := tree.Last(); !ok || last != 12 {
		t.Errorf("Last = %d, want 12", last)
	}
}

func TestDuplicatesKeepMultiplicity(t *testing.T) {
	tree := NewOrdered[int]()
	for range 5 {
		tree.Insert(7)
	}
	if tree.Len() != 5 {
		t.Fatalf("Len = %d, want 5", tree.Len())
	}
	seen := 0
	tree.ForEach(func(v int) bool {
		if v != 7 {
			t.Errorf("unexpected value %d", v)
		}
		seen++
		return true
	})
	if seen != 5 {
		t.Errorf("iterated %d values, want 5", seen)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after duplicate inserts: %v", err)
	}
}

func TestRangeScenario(t *testing.T) {
	tree := NewOrdered[int]()
	for v := -1000; v <= 1000; v++ {
		tree.Insert(v)
	}
	if tree.Len() != 2001 {
		t.Fatalf("Len = %d, want 2001", tree.Len())
	}
	if first, _ := tree.First(); first != -1000 {
		t.Errorf("First = %d, want -1000", first)
	}
	if last, _ := tree.Last(); last != 1000 {
		t.Errorf("Last = %d, want 1000", last)
	}
	for i := range tree.Len() {
		v, err := tree.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if v != i-1000 {
			t.Fatalf("At(%d) = %d, want %d", i, v, i-1000)
		}
	}
	want := -1000
	tree.ForEach(func(v int) bool {
		if v != want {
			t.Fatalf("forward iteration yields %d, want %d", v, want)
		}
		want++
		return true
	})
	if want != 1001 {
		t.Errorf("forward iteration stopped at %d", want)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after range build: %v", err)
	}
}

func TestRankOutOfBounds(t *testing.T) {
	tree := NewOrdered[int]()
	if _, err := tree.At(0); !errors.Is(err, ErrRankOutOfBounds) {
		t.Errorf("expected ErrRankOutOfBounds on empty tree, got %v", err)
	}
	tree.Insert(1)
	if _, err := tree.At(-1); !errors.Is(err, ErrRankOutOfBounds) {
		t.Errorf("expected ErrRankOutOfBounds for negative rank, got %v", err)
	}
	if _, err := tree.At(1); !errors.Is(err, ErrRankOutOfBounds) {
		t.Errorf("expected ErrRankOutOfBounds for rank == len, got %v", err)
	}
	if v, err := tree.At(0); err != nil || v != 1 {
		t.Errorf("At(0) = %d, %v", v, err)
	}
}

func TestExtendAndFromSeq(t *testing.T) {
	tree, err := FromSeq(Ordered[int](), func(yield func(int) bool) {
		for _, v := range []int{3, 1, 2} {
			if !yield(v) {
				return
			}
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Extend(func(yield func(int) bool) {
		yield(0)
	})
	if tree.Len() != 4 {
		t.Fatalf("Len = %d, want 4", tree.Len())
	}
	want := 0
	tree.ForEach(func(v int) bool {
		if v != want {
			t.Fatalf("iteration yields %d, want %d", v, want)
		}
		want++
		return true
	})
}
