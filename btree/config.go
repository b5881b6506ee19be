package btree

import (
	"cmp"
	"fmt"
)

const (
	// maxLeafValues is the fixed leaf capacity; a third value triggers a split.
	maxLeafValues = 2
	// maxSeparatorKeys is the fixed key capacity of internal nodes.
	maxSeparatorKeys = 2
	// maxChildren is the fixed fanout of internal nodes.
	maxChildren = 3
)

// Config configures a sorted-multiset tree.
type Config[T any] struct {
	// Compare establishes the total order over stored values. It must return
	// a negative number if a sorts before b, zero if they are equal, and a
	// positive number otherwise.
	Compare func(a, b T) int
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}

// Ordered is a default configuration for naturally ordered value types.
func Ordered[T cmp.Ordered]() Config[T] {
	return Config[T]{Compare: cmp.Compare[T]}
}
