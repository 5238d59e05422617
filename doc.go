// Package arena implements fixed-capacity bump allocators (memory arenas).
//
// # Overview
//
// An arena owns one contiguous buffer and hands out pieces of it by advancing
// a single offset. There is no per-allocation free: all blocks are released at
// once by Reset (the buffer is kept) or Destroy (the buffer is returned). The
// capacity is chosen at creation and never grows; a full arena reports
// ErrExhausted and the caller decides whether to Reset or use a bigger one.
//
// Three flavours share the same Allocate/Reset/Destroy shape:
//
//   - Arena: no synchronization, for a single goroutine.
//   - SafeArena: one Arena behind a sync.Mutex, shared by many goroutines.
//   - Pool: gives every goroutine its own Arena through a Local context, so
//     the allocation path needs no lock.
//
// # Basic Usage
//
//	a, err := arena.New(64 << 10)
//	if err != nil {
//		return err
//	}
//	defer a.Destroy()
//
//	buf, err := a.Allocate(1024, 0) // default 16-byte alignment
//	p, err := arena.Alloc[MyStruct](a)
//	s, err := arena.AllocSlice[int64](a, 100)
//
//	a.Reset() // O(1), every block above is now invalid
//
// # Alignment
//
// Allocate aligns the returned address, not just the offset. Alignment 0 means
// DefaultAlignment (or the value given WithDefaultAlignment). An alignment that
// is not a power of two is treated as 1 unless the arena was created
// WithStrictAlignment, in which case Allocate returns ErrBadAlignment.
//
// # Per-goroutine Pools
//
//	pool, _ := arena.NewPool(1 << 20)
//	defer pool.Destroy() // releases every goroutine's arena
//
//	go func() {
//		l := arena.NewLocal()
//		defer l.Close()
//		buf, err := pool.Allocate(l, 256, 0)
//		...
//		pool.Reset(l)
//	}()
//
// # Lifetimes
//
// Slices returned by Allocate are plain views into the arena buffer. Using
// them after Reset or Destroy is not detected: after Reset they alias newer
// allocations, and with BackingMmap they point to unmapped memory after
// Destroy. Code that needs detection should use AllocateHandle and Bytes,
// which report ErrStaleHandle once the arena's generation has moved on.
//
// Typed helpers (Alloc, AllocSlice, ...) must only be used with types that
// contain no Go pointers; the arena buffer is not scanned by the garbage
// collector.
//
// # Logging and Metrics
//
// Lifecycle events are logged through the logging subpackage at debug level;
// the allocation path never logs. Metrics returns a snapshot whose String
// method renders humanized sizes:
//
//	fmt.Println(a.Metrics())
//	// arena "req": 1.0 KiB / 64 KiB used (1.6%), 63 KiB free, gen 0
package arena
