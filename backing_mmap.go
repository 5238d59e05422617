//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type mmapBacking struct {
	buf []byte
}

func newMmapBacking(n int) (backing, error) {
	buf, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %w", ErrAllocationFailure, err)
	}
	return &mmapBacking{buf: buf}, nil
}

func (m *mmapBacking) bytes() []byte { return m.buf }

func (m *mmapBacking) release() error {
	if m.buf == nil {
		return nil
	}
	err := unix.Munmap(m.buf)
	m.buf = nil
	if err != nil {
		return fmt.Errorf("arena: munmap: %w", err)
	}
	return nil
}
