//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package arena

import "fmt"

func newMmapBacking(n int) (backing, error) {
	return nil, fmt.Errorf("%w: mmap backing is not supported on this platform", ErrAllocationFailure)
}
