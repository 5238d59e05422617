package arena

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"

	"github.com/pavanmanishd/arena/v2/logging"
)

var (
	poolSeq  atomic.Uint64
	localSeq atomic.Uint64
)

// Local is the per-goroutine context through which a Pool hands out private
// arenas. Create one with NewLocal at the start of a goroutine and Close it
// before the goroutine exits. A Local must not be shared between goroutines
// that run concurrently.
//
// A Local is bound to at most one pool at a time. Allocating through another
// pool rebinds it; the arena it held in the previous pool stays registered
// there and is picked up again on the next allocation through that pool.
type Local struct {
	id    uint64
	owner *Pool
	arena *Arena
	pools map[*Pool]struct{}
}

// NewLocal returns an unbound goroutine context.
func NewLocal() *Local {
	return &Local{id: localSeq.Add(1)}
}

// ID returns a process-unique identifier for the context.
func (l *Local) ID() uint64 {
	if l == nil {
		return 0
	}
	return l.id
}

// Bound reports whether l's active arena belongs to p.
func (l *Local) Bound(p *Pool) bool {
	return l != nil && p != nil && l.owner == p
}

// Used returns the bytes used in the active arena, or 0 when unbound.
func (l *Local) Used() int {
	if l == nil {
		return 0
	}
	return l.arena.Used()
}

// Available returns the bytes left in the active arena, or 0 when unbound.
func (l *Local) Available() int {
	if l == nil {
		return 0
	}
	return l.arena.Available()
}

// Close releases every arena l holds in any pool.
func (l *Local) Close() error {
	if l == nil {
		return nil
	}
	var errs []error
	for p := range l.pools {
		errs = append(errs, p.Release(l))
	}
	l.owner, l.arena = nil, nil
	logging.Debug("local %d closed", l.id)
	return errors.Join(errs...)
}

// Pool lazily gives each Local its own Arena of a fixed capacity. The
// allocation path touches only the caller's arena and takes no lock; the
// registry lock is taken only when a Local binds, is released, or when the
// pool is destroyed.
type Pool struct {
	id       uint64
	capacity int
	cfg      config

	mu        sync.Mutex
	arenas    map[*Local]*Arena
	destroyed bool
}

// NewPool creates a pool whose per-goroutine arenas own arenaCapacity bytes
// each. Options apply to every arena the pool creates.
func NewPool(arenaCapacity int, opts ...Option) (*Pool, error) {
	if arenaCapacity <= 0 {
		return nil, ErrZeroCapacity
	}
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		id:       poolSeq.Add(1),
		capacity: arenaCapacity,
		cfg:      c,
		arenas:   make(map[*Local]*Arena),
	}
	if p.cfg.name == "" {
		p.cfg.name = fmt.Sprintf("pool-%d", p.id)
	}
	return p, nil
}

// ArenaCapacity returns the capacity of every arena created by the pool.
func (p *Pool) ArenaCapacity() int {
	if p == nil {
		return 0
	}
	return p.capacity
}

// Name returns the pool's label.
func (p *Pool) Name() string {
	if p == nil {
		return ""
	}
	return p.cfg.name
}

// Allocate reserves size bytes from l's private arena in this pool, creating
// the arena on first use.
func (p *Pool) Allocate(l *Local, size, alignment int) ([]byte, error) {
	if p == nil {
		return nil, ErrNilPool
	}
	if l == nil {
		return nil, ErrNilLocal
	}
	if l.owner != p {
		if err := p.bind(l); err != nil {
			return nil, err
		}
	}
	return l.arena.Allocate(size, alignment)
}

// AllocateHandle is Allocate returning a Handle. Resolve it with Bytes using
// the same Local.
func (p *Pool) AllocateHandle(l *Local, size, alignment int) (Handle, error) {
	if p == nil {
		return Handle{}, ErrNilPool
	}
	if l == nil {
		return Handle{}, ErrNilLocal
	}
	if l.owner != p {
		if err := p.bind(l); err != nil {
			return Handle{}, err
		}
	}
	return l.arena.AllocateHandle(size, alignment)
}

// Bytes resolves a handle issued to l by this pool.
func (p *Pool) Bytes(l *Local, h Handle) ([]byte, error) {
	if p == nil {
		return nil, ErrNilPool
	}
	if l == nil {
		return nil, ErrNilLocal
	}
	if l.owner != p {
		return nil, ErrStaleHandle
	}
	return l.arena.Bytes(h)
}

func (p *Pool) bind(l *Local) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return ErrDestroyed
	}
	a, ok := p.arenas[l]
	if !ok {
		c := p.cfg
		c.name = fmt.Sprintf("%s/local-%d", p.cfg.name, l.id)
		var err error
		if a, err = newArena(p.capacity, c); err != nil {
			return err
		}
		p.arenas[l] = a
		if l.pools == nil {
			l.pools = make(map[*Pool]struct{})
		}
		l.pools[p] = struct{}{}
		logging.Debug("pool %q bound local %d (%d bindings)", p.cfg.name, l.id, len(p.arenas))
	}
	l.owner, l.arena = p, a
	return nil
}

// Reset rewinds l's arena if l is currently bound to this pool. Otherwise it
// does nothing.
func (p *Pool) Reset(l *Local) {
	if p == nil || l == nil || l.owner != p {
		return
	}
	l.arena.Reset()
}

// Release destroys l's arena in this pool and unbinds l from it. Releasing a
// Local that holds no arena here is a no-op.
func (p *Pool) Release(l *Local) error {
	if p == nil || l == nil {
		return nil
	}
	p.mu.Lock()
	a, ok := p.arenas[l]
	delete(p.arenas, l)
	p.mu.Unlock()

	delete(l.pools, p)
	if l.owner == p {
		l.owner, l.arena = nil, nil
	}
	if !ok {
		return nil
	}
	logging.Debug("pool %q released local %d", p.cfg.name, l.id)
	return a.Destroy()
}

// Destroy releases the arenas of every Local that allocated through the pool,
// not only the caller's. It must not run concurrently with allocations
// through the pool. Later allocations through the pool return ErrDestroyed.
func (p *Pool) Destroy() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return nil
	}
	p.destroyed = true

	n := len(p.arenas)
	var errs []error
	for l, a := range p.arenas {
		errs = append(errs, a.Destroy())
		delete(p.arenas, l)
	}
	logging.Info("pool %q destroyed: %d arenas, %s released",
		p.cfg.name, n, humanize.IBytes(uint64(n)*uint64(p.capacity)))
	return errors.Join(errs...)
}

// Allocator adapts the pool to the Allocator interface for a single Local so
// the typed helpers can allocate through it.
func (p *Pool) Allocator(l *Local) Allocator {
	return localAllocator{p: p, l: l}
}

type localAllocator struct {
	p *Pool
	l *Local
}

func (la localAllocator) Allocate(size, alignment int) ([]byte, error) {
	return la.p.Allocate(la.l, size, alignment)
}
