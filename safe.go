package arena

import (
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Every operation holds the lock for its full duration, so allocations from
// different goroutines are strictly serialized.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe creates a goroutine-safe arena that owns capacity bytes.
func NewSafe(capacity int, opts ...Option) (*SafeArena, error) {
	a, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// Allocate thread-safely reserves size bytes aligned to alignment.
func (s *SafeArena) Allocate(size, alignment int) ([]byte, error) {
	if s == nil {
		return nil, ErrNilArena
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(size, alignment)
}

// AllocateHandle thread-safely reserves size bytes and returns a Handle.
func (s *SafeArena) AllocateHandle(size, alignment int) (Handle, error) {
	if s == nil {
		return Handle{}, ErrNilArena
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocateHandle(size, alignment)
}

// Bytes thread-safely resolves a handle issued by this arena.
func (s *SafeArena) Bytes(h Handle) ([]byte, error) {
	if s == nil {
		return nil, ErrNilArena
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Bytes(h)
}

// Reset thread-safely rewinds the arena to empty.
func (s *SafeArena) Reset() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Destroy thread-safely releases the backing buffer. Later allocations
// return ErrDestroyed.
func (s *SafeArena) Destroy() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Destroy()
}

// Capacity thread-safely returns the number of bytes owned by the arena.
func (s *SafeArena) Capacity() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Used thread-safely returns the bytes handed out since the last Reset.
func (s *SafeArena) Used() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Used()
}

// Available thread-safely returns the bytes left.
func (s *SafeArena) Available() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Available()
}
