package arena

import (
	"math"
	"unsafe"
)

// Typed helpers. T must not contain Go pointers: arena memory is a byte
// buffer the garbage collector does not scan.

// Alloc returns a pointer to a zeroed T stored inside the allocator.
func Alloc[T any](a Allocator) (*T, error) {
	p, err := AllocUninitialized[T](a)
	if err != nil {
		return nil, err
	}
	var zero T
	*p = zero
	return p, nil
}

// AllocUninitialized returns a *T located in the allocator without zeroing it.
// The value holds whatever bytes were previously at that address.
func AllocUninitialized[T any](a Allocator) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, ErrZeroSize
	}
	b, err := a.Allocate(size, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocSlice allocates a slice of n elements of type T. The elements are not
// initialized.
func AllocSlice[T any](a Allocator, n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrZeroSize
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return nil, ErrZeroSize
	}
	if n > math.MaxInt/elemSize {
		return nil, ErrExhausted
	}
	b, err := a.Allocate(elemSize*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// AllocSliceZeroed allocates a slice of n zeroed elements of type T.
func AllocSliceZeroed[T any](a Allocator, n int) ([]T, error) {
	s, err := AllocSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}

// AllocString copies s into the allocator and returns a string backed by the
// copy. Empty strings are returned as is without touching the allocator.
func AllocString(a Allocator, s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	b, err := a.Allocate(len(s), 1)
	if err != nil {
		return "", err
	}
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}
