package arena

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func newTestArena(t testing.TB, capacity int) *Arena {
	t.Helper()
	a, err := New(capacity)
	require.NoError(t, err)
	t.Cleanup(func() { a.Destroy() })
	return a
}

func TestAlloc(t *testing.T) {
	a := newTestArena(t, 1024)

	// dirty the buffer so zeroing is observable
	junk, err := a.Allocate(1024, 1)
	require.NoError(t, err)
	for i := range junk {
		junk[i] = 0xFF
	}
	a.Reset()

	ptr, err := Alloc[int](a)
	require.NoError(t, err)
	assert.Zero(t, *ptr)

	s, err := Alloc[testStruct](a)
	require.NoError(t, err)
	assert.Equal(t, testStruct{}, *s)
	assert.Zero(t, uintptr(unsafe.Pointer(s))%unsafe.Alignof(*s))

	*ptr = 42
	s.a = 100
	assert.Equal(t, 42, *ptr)
	assert.Equal(t, int64(100), s.a)
}

func TestAllocUninitialized(t *testing.T) {
	a := newTestArena(t, 1024)

	junk, err := a.Allocate(8, 8)
	require.NoError(t, err)
	copy(junk, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	a.Reset()

	ptr, err := AllocUninitialized[[8]byte](a)
	require.NoError(t, err)
	assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, *ptr, "previous contents are kept")

	*ptr = [8]byte{}
	assert.Equal(t, [8]byte{}, *ptr)
}

func TestAllocZeroSizeType(t *testing.T) {
	a := newTestArena(t, 64)
	_, err := Alloc[struct{}](a)
	require.ErrorIs(t, err, ErrZeroSize)
	_, err = AllocSlice[struct{}](a, 4)
	require.ErrorIs(t, err, ErrZeroSize)
}

func TestAllocSlice(t *testing.T) {
	a := newTestArena(t, 1024)

	slice, err := AllocSlice[int](a, 10)
	require.NoError(t, err)
	assert.Len(t, slice, 10)
	assert.Equal(t, 10, cap(slice))
	for i := range slice {
		slice[i] = i * 2
	}
	assert.Equal(t, 18, slice[9])

	for _, n := range []int{0, -1} {
		s, err := AllocSlice[int](a, n)
		require.ErrorIs(t, err, ErrZeroSize)
		assert.Nil(t, s)
	}

	_, err = AllocSlice[int64](a, 1<<20)
	require.ErrorIs(t, err, ErrExhausted)
}

func TestAllocSliceOverflow(t *testing.T) {
	a := newTestArena(t, 64)
	used := a.Used()
	_, err := AllocSlice[[1024]byte](a, int(^uint(0)>>1)/512)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, used, a.Used())
}

func TestAllocSliceZeroed(t *testing.T) {
	a := newTestArena(t, 1024)

	junk, err := a.Allocate(1024, 1)
	require.NoError(t, err)
	for i := range junk {
		junk[i] = 0xAA
	}
	a.Reset()

	slice, err := AllocSliceZeroed[int32](a, 16)
	require.NoError(t, err)
	for i, v := range slice {
		assert.Zero(t, v, "slice[%d]", i)
	}
}

func TestAllocString(t *testing.T) {
	a := newTestArena(t, 64)

	src := []byte("hello arena")
	s, err := AllocString(a, string(src))
	require.NoError(t, err)
	src[0] = 'j'
	assert.Equal(t, "hello arena", s)
	assert.Equal(t, len(s), a.Used())

	empty, err := AllocString(a, "")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, len(s), a.Used())

	_, err = AllocString(a, string(make([]byte, 100)))
	require.ErrorIs(t, err, ErrExhausted)
}

func TestAllocThroughEveryAllocator(t *testing.T) {
	safe, err := NewSafe(1024)
	require.NoError(t, err)
	defer safe.Destroy()

	pool, err := NewPool(1024)
	require.NoError(t, err)
	defer pool.Destroy()
	l := NewLocal()
	defer l.Close()

	allocators := map[string]Allocator{
		"arena": newTestArena(t, 1024),
		"safe":  safe,
		"pool":  pool.Allocator(l),
	}
	for name, al := range allocators {
		t.Run(name, func(t *testing.T) {
			p, err := Alloc[testStruct](al)
			require.NoError(t, err)
			p.b = 7
			s, err := AllocSliceZeroed[uint16](al, 8)
			require.NoError(t, err)
			assert.Len(t, s, 8)
			str, err := AllocString(al, name)
			require.NoError(t, err)
			assert.Equal(t, name, str)
		})
	}
	assert.NotZero(t, l.Used())
}

func TestAllocExhaustion(t *testing.T) {
	a := newTestArena(t, 16)
	_, err := Alloc[[32]byte](a)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Zero(t, a.Used())
}

func BenchmarkAlloc(b *testing.B) {
	a := newTestArena(b, 1024*1024)

	b.Run("Alloc[int]", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Alloc[int](a); err != nil {
				a.Reset()
			}
		}
	})

	b.Run("AllocUninitialized[int]", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := AllocUninitialized[int](a); err != nil {
				a.Reset()
			}
		}
	})

	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("AllocSlice[int]-%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := AllocSlice[int](a, n); err != nil {
					a.Reset()
				}
			}
		})
	}
}
