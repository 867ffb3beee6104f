package binmap

import "github.com/pkg/errors"

var (
	// ErrNullKey is returned when a key is nil or converts to nil.
	ErrNullKey = errors.New("cannot use null or undefined as key")

	// ErrUnorderable is returned when the first key of a container without
	// a comparator is neither textual nor numeric.
	ErrUnorderable = errors.New("key type has no default ordering")

	// ErrIncompatible is returned when a key does not match the kind the
	// container's comparator was inferred from.
	ErrIncompatible = errors.New("cannot set key of mis-matching type")

	// ErrConflictingBounds is returned when a range gives both an
	// inclusive and an exclusive bound on the same side.
	ErrConflictingBounds = errors.New("conflicting range bounds")
)
