package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Name        string
	Capacity    int     // Bytes owned
	Used        int     // Bytes handed out, padding included
	Available   int     // Capacity - Used
	Generation  uint64  // Resets and destroy seen so far
	Utilization float64 // Used / Capacity (0.0-1.0)
}

func (m ArenaMetrics) String() string {
	return fmt.Sprintf("arena %q: %s / %s used (%.1f%%), %s free, gen %d",
		m.Name,
		humanize.IBytes(uint64(m.Used)),
		humanize.IBytes(uint64(m.Capacity)),
		m.Utilization*100,
		humanize.IBytes(uint64(m.Available)),
		m.Generation)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 for a destroyed arena.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Used()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Name:        a.Name(),
		Capacity:    a.Capacity(),
		Used:        a.Used(),
		Available:   a.Available(),
		Generation:  a.Generation(),
		Utilization: a.Utilization(),
	}
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	if s == nil {
		return ArenaMetrics{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// PoolMetrics describes how much memory a pool has reserved. Usage inside
// the per-goroutine arenas is only visible to their owners through Local.
type PoolMetrics struct {
	Name          string
	Bindings      int // Locals holding an arena
	ArenaCapacity int // Capacity of each arena
	Reserved      int // Bindings * ArenaCapacity
}

func (m PoolMetrics) String() string {
	return fmt.Sprintf("pool %q: %d arenas of %s, %s reserved",
		m.Name, m.Bindings,
		humanize.IBytes(uint64(m.ArenaCapacity)),
		humanize.IBytes(uint64(m.Reserved)))
}

// Metrics returns a snapshot of the pool's registry.
func (p *Pool) Metrics() PoolMetrics {
	if p == nil {
		return PoolMetrics{}
	}
	p.mu.Lock()
	n := len(p.arenas)
	p.mu.Unlock()
	return PoolMetrics{
		Name:          p.cfg.name,
		Bindings:      n,
		ArenaCapacity: p.capacity,
		Reserved:      n * p.capacity,
	}
}
