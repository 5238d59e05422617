package arena

// Handle names a block inside an arena by offset and generation instead of by
// address. A handle outlived by a Reset or Destroy is reported as stale by
// Bytes rather than aliasing newer allocations.
type Handle struct {
	offset int
	size   int
	gen    uint64
}

// Size returns the number of bytes the handle refers to.
func (h Handle) Size() int { return h.size }

// IsZero reports whether h was never issued by an arena.
func (h Handle) IsZero() bool { return h.size == 0 }

// AllocateHandle behaves like Allocate but returns a Handle.
func (a *Arena) AllocateHandle(size, alignment int) (Handle, error) {
	start, err := a.bump(size, alignment)
	if err != nil {
		return Handle{}, err
	}
	return Handle{offset: start, size: size, gen: a.gen}, nil
}

// Bytes resolves h to its block. It returns ErrStaleHandle when the arena has
// been reset or destroyed since h was issued.
func (a *Arena) Bytes(h Handle) ([]byte, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	if h.IsZero() {
		return nil, ErrZeroSize
	}
	if a.buf == nil || h.gen != a.gen || h.offset+h.size > a.offset {
		return nil, ErrStaleHandle
	}
	return a.buf[h.offset : h.offset+h.size : h.offset+h.size], nil
}
