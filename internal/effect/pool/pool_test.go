package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireFillsInIndexOrder(t *testing.T) {
	p := New[int](3)
	for want := 0; want < 3; want++ {
		i, ok := p.Acquire(want * 10)
		require.True(t, ok)
		assert.Equal(t, want, i)
	}
	assert.True(t, p.Full())
	assert.Equal(t, 3, p.Len())

	_, ok := p.Acquire(99)
	assert.False(t, ok, "full pool must refuse")
	assert.Equal(t, 3, p.Len())
}

func TestReleaseRecyclesSlot(t *testing.T) {
	p := New[string](2)
	a, _ := p.Acquire("a")
	p.Acquire("b")
	p.Release(a)
	assert.Nil(t, p.Get(a))
	assert.Equal(t, 1, p.Len())

	i, ok := p.Acquire("c")
	require.True(t, ok)
	assert.Equal(t, a, i)
	assert.Equal(t, "c", *p.Get(i))

	p.Release(i)
	p.Release(i)
	assert.Equal(t, 1, p.Len(), "double release is a no-op")
}

func TestAcquireTakesLowestEmptySlot(t *testing.T) {
	p := New[int](4)
	for v := 0; v < 4; v++ {
		p.Acquire(v)
	}
	p.Release(2)
	p.Release(0)
	p.Release(3)

	for _, want := range []int{0, 2, 3} {
		i, ok := p.Acquire(want)
		require.True(t, ok)
		assert.Equal(t, want, i)
	}
	assert.True(t, p.Full())
}

func TestEachSkipsEmptyAndAllowsRelease(t *testing.T) {
	p := New[int](4)
	for v := 1; v <= 4; v++ {
		p.Acquire(v)
	}
	p.Release(1)

	var seen []int
	p.Each(func(i int, v *int) {
		seen = append(seen, *v)
		if *v == 3 {
			p.Release(i)
		}
	})
	assert.Equal(t, []int{1, 3, 4}, seen)
	assert.Equal(t, 2, p.Len())

	seen = seen[:0]
	p.Each(func(_ int, v *int) { seen = append(seen, *v) })
	assert.Equal(t, []int{1, 4}, seen)
}

func TestClear(t *testing.T) {
	p := New[int](2)
	p.Acquire(1)
	p.Acquire(2)
	p.Clear()
	assert.Equal(t, 0, p.Len())
	i, ok := p.Acquire(5)
	require.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestZeroCapacity(t *testing.T) {
	p := New[int](0)
	_, ok := p.Acquire(1)
	assert.False(t, ok)
	assert.Equal(t, 0, p.Cap())
}
