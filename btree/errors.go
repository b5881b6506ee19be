package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrRankOutOfBounds signals a rank outside [0, Len()).
	ErrRankOutOfBounds = errors.New("btree: rank out of bounds")
	// ErrCorruptTree signals a violated structural invariant, found by Check.
	ErrCorruptTree = errors.New("btree: corrupt tree structure")
)
