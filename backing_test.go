package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapBacking(t *testing.T) {
	b, err := newHeapBacking(128)
	require.NoError(t, err)
	assert.Len(t, b.bytes(), 128)
	require.NoError(t, b.release())
	assert.Nil(t, b.bytes())
}

func TestHeapBackingImpossibleLength(t *testing.T) {
	b, err := newHeapBacking(math.MaxInt)
	require.ErrorIs(t, err, ErrAllocationFailure)
	assert.Nil(t, b)
}

func TestNewBackingFailureLeavesNoArena(t *testing.T) {
	s, err := NewSafe(math.MaxInt)
	require.ErrorIs(t, err, ErrAllocationFailure)
	assert.Nil(t, s)

	p, err := NewPool(math.MaxInt)
	require.NoError(t, err, "pools create arenas lazily")
	defer p.Destroy()

	l := NewLocal()
	_, err = p.Allocate(l, 8, 0)
	require.ErrorIs(t, err, ErrAllocationFailure)
	assert.False(t, l.Bound(p))
	assert.Zero(t, p.Metrics().Bindings)
}
