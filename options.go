package arena

import "fmt"

// DefaultAlignment is used when Allocate is called with alignment 0. It is
// large enough for any Go value and for 128-bit vector loads.
const DefaultAlignment = 16

// Backing selects where an arena's buffer comes from.
type Backing int

const (
	// BackingHeap allocates the buffer with make on the Go heap.
	BackingHeap Backing = iota
	// BackingMmap maps anonymous private memory outside the Go heap. The
	// mapping is returned to the OS by Destroy.
	BackingMmap
)

func (b Backing) String() string {
	switch b {
	case BackingHeap:
		return "heap"
	case BackingMmap:
		return "mmap"
	}
	return fmt.Sprintf("backing(%d)", int(b))
}

// Option configures an Arena, SafeArena or Pool.
type Option func(*config)

type config struct {
	name      string
	align     int
	strict    bool
	backing   Backing
	alignSeen bool
}

// WithDefaultAlignment sets the alignment used for requests with alignment 0.
// n must be a power of two.
func WithDefaultAlignment(n int) Option {
	return func(c *config) {
		c.align = n
		c.alignSeen = true
	}
}

// WithStrictAlignment makes Allocate reject alignments that are not a power
// of two with ErrBadAlignment instead of treating them as 1.
func WithStrictAlignment() Option {
	return func(c *config) { c.strict = true }
}

// WithBacking selects the source of the backing buffer.
func WithBacking(b Backing) Option {
	return func(c *config) { c.backing = b }
}

// WithName labels the arena in log lines and metrics.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

func newConfig(opts []Option) (config, error) {
	c := config{align: DefaultAlignment, backing: BackingHeap}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.alignSeen && !isPowerOfTwo(c.align) {
		return c, fmt.Errorf("%w: default alignment %d", ErrBadAlignment, c.align)
	}
	if c.backing != BackingHeap && c.backing != BackingMmap {
		return c, fmt.Errorf("%w: unknown %v", ErrInvalidArgument, c.backing)
	}
	return c, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
