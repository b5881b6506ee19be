/*
Package btree implements a 2-3 search tree specialized as a sorted multiset.

The package is intentionally not a generic map container. It stores a single
totally-ordered value type, keeps duplicates, and is tuned for ordered
traversal and rank access:
  - distinct leaf and subtree node representations,
  - leaves hold 1–2 values and are chained to their sorted neighbors,
  - internal nodes hold 2–3 children and one separator key per child seam,
  - cached subtree value counts give O(log n) rank lookup,
  - a double-ended cursor walks the leaf chain independent of tree shape.

Mutation is in place and single-writer: the tree has no internal locking and
no delete operation. Cursors hold shared access to leaves; mutating the tree
while a cursor is alive leaves that cursor's future results undefined.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
