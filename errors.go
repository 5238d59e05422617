package arena

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	// ErrInvalidArgument reports a zero or negative capacity or size, a bad
	// alignment under strict mode, or a nil handle.
	ErrInvalidArgument = errors.New("arena: invalid argument")

	// ErrExhausted reports that the arena has too little room left for the
	// request including alignment padding. Reset the arena or use a larger one.
	ErrExhausted = errors.New("arena: capacity exhausted")

	// ErrAllocationFailure reports that the backing buffer could not be
	// obtained when an arena was created.
	ErrAllocationFailure = errors.New("arena: backing allocation failed")

	// ErrDestroyed reports use of an arena, safe arena or pool after Destroy.
	ErrDestroyed = errors.New("arena: use after destroy")

	// ErrStaleHandle reports a handle issued before the last Reset or Destroy.
	ErrStaleHandle = errors.New("arena: stale handle")
)

var (
	ErrZeroCapacity = fmt.Errorf("%w: capacity must be positive", ErrInvalidArgument)
	ErrZeroSize     = fmt.Errorf("%w: size must be positive", ErrInvalidArgument)
	ErrBadAlignment = fmt.Errorf("%w: alignment must be a power of two", ErrInvalidArgument)
	ErrNilArena     = fmt.Errorf("%w: nil arena", ErrInvalidArgument)
	ErrNilPool      = fmt.Errorf("%w: nil pool", ErrInvalidArgument)
	ErrNilLocal     = fmt.Errorf("%w: nil local", ErrInvalidArgument)
)
