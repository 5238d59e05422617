package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/pavanmanishd/arena/v2/logging"
)

// backing owns the memory behind an arena.
type backing interface {
	bytes() []byte
	release() error
}

type heapBacking struct {
	buf []byte
}

func (h *heapBacking) bytes() []byte { return h.buf }

func (h *heapBacking) release() error {
	h.buf = nil
	return nil
}

// newHeapBacking converts the runtime panic for an impossible length into an
// error. Running out of memory is still fatal.
func newHeapBacking(n int) (b backing, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: heap %s: %v", ErrAllocationFailure, humanize.IBytes(uint64(n)), r)
		}
	}()
	return &heapBacking{buf: make([]byte, n)}, nil
}

func newBacking(kind Backing, n int) (backing, error) {
	var (
		b   backing
		err error
	)
	switch kind {
	case BackingMmap:
		b, err = newMmapBacking(n)
	default:
		b, err = newHeapBacking(n)
	}
	if err != nil {
		logging.Error("%v backing of %s failed: %v", kind, humanize.IBytes(uint64(n)), err)
		return nil, err
	}
	return b, nil
}
