package arena

import (
	"math"
	"unsafe"

	"github.com/dustin/go-humanize"

	"github.com/pavanmanishd/arena/v2/logging"
)

// Allocator is implemented by every arena flavour in this package.
type Allocator interface {
	// Allocate returns size bytes aligned to alignment. The memory is not
	// zeroed.
	Allocate(size, alignment int) ([]byte, error)
}

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
// Use SafeArena for shared access or Pool for one arena per goroutine.
type Arena struct {
	buf      []byte
	offset   int
	capacity int
	gen      uint64

	mem    backing
	name   string
	align  int
	strict bool
}

// New creates an arena that owns capacity bytes. The capacity is fixed for
// the lifetime of the arena.
func New(capacity int, opts ...Option) (*Arena, error) {
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newArena(capacity, c)
}

func newArena(capacity int, c config) (*Arena, error) {
	mem, err := newBacking(c.backing, capacity)
	if err != nil {
		return nil, err
	}
	a := &Arena{
		buf:      mem.bytes(),
		capacity: capacity,
		mem:      mem,
		name:     c.name,
		align:    c.align,
		strict:   c.strict,
	}
	logging.Debug("arena %q created: %s %v", a.name, humanize.IBytes(uint64(capacity)), c.backing)
	return a, nil
}

// Allocate returns a slice of exactly size bytes whose first byte is aligned
// to alignment. An alignment of 0 selects the arena's default alignment; an
// alignment that is not a power of two is treated as 1 unless the arena was
// created WithStrictAlignment.
//
// The slice is only valid until the next Reset or Destroy. Its contents are
// whatever was last written there.
func (a *Arena) Allocate(size, alignment int) ([]byte, error) {
	start, err := a.bump(size, alignment)
	if err != nil {
		return nil, err
	}
	return a.buf[start : start+size : start+size], nil
}

// bump reserves size bytes and returns the offset of the first one. On
// failure the arena is left untouched.
func (a *Arena) bump(size, alignment int) (int, error) {
	if a == nil {
		return 0, ErrNilArena
	}
	if a.buf == nil {
		return 0, ErrDestroyed
	}
	if size <= 0 {
		return 0, ErrZeroSize
	}
	align, err := a.resolveAlignment(alignment)
	if err != nil {
		return 0, err
	}

	mask := uintptr(align) - 1
	current := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf))) + uintptr(a.offset)
	if current > ^uintptr(0)-mask {
		return 0, ErrExhausted
	}
	padding := int(((current + mask) &^ mask) - current)

	if padding > math.MaxInt-a.offset {
		return 0, ErrExhausted
	}
	start := a.offset + padding
	if size > math.MaxInt-start {
		return 0, ErrExhausted
	}
	end := start + size
	if end > a.capacity {
		return 0, ErrExhausted
	}
	a.offset = end
	return start, nil
}

func (a *Arena) resolveAlignment(alignment int) (int, error) {
	switch {
	case alignment == 0:
		return a.align, nil
	case isPowerOfTwo(alignment):
		return alignment, nil
	case a.strict:
		return 0, ErrBadAlignment
	}
	return 1, nil
}

// Reset rewinds the arena to empty in O(1). Memory is not zeroed and every
// slice handed out before the call must no longer be used.
func (a *Arena) Reset() {
	if a == nil || a.buf == nil {
		return
	}
	a.offset = 0
	a.gen++
}

// Destroy releases the backing buffer. Destroying a nil or already destroyed
// arena is a no-op. Later calls to Allocate return ErrDestroyed.
func (a *Arena) Destroy() error {
	if a == nil || a.buf == nil {
		return nil
	}
	capacity := a.capacity
	a.buf = nil
	a.offset = 0
	a.capacity = 0
	a.gen++
	err := a.mem.release()
	logging.Debug("arena %q destroyed: %s released", a.name, humanize.IBytes(uint64(capacity)))
	return err
}

// Capacity returns the number of bytes owned by the arena.
func (a *Arena) Capacity() int {
	if a == nil {
		return 0
	}
	return a.capacity
}

// Used returns the bytes handed out since the last Reset, padding included.
func (a *Arena) Used() int {
	if a == nil {
		return 0
	}
	return a.offset
}

// Available returns Capacity() - Used().
func (a *Arena) Available() int {
	if a == nil {
		return 0
	}
	return a.capacity - a.offset
}

// Generation is incremented by every Reset and by Destroy.
func (a *Arena) Generation() uint64 {
	if a == nil {
		return 0
	}
	return a.gen
}

// Name returns the label given with WithName.
func (a *Arena) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}
