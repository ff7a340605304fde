package rtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rtree: invalid configuration")
	// ErrInvariant signals a violated structural tree invariant, as detected by Check.
	ErrInvariant = errors.New("rtree: invariant violated")
)
