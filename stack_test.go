package syncds

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPopReturnsMostRecentFirst(t *testing.T) {
	s := NewStack[int]()
	s.Push(3)
	s.Push(1)
	s.Push(2)
	for _, want := range []int{2, 1, 3} {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestStackInterleavedPushAndPop(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("b")
	v, ok := s.TryPop()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	s.Push("c")
	h, err := s.PopHandle()
	require.NoError(t, err)
	assert.Equal(t, "c", h.Value())
	v, ok = s.TryPop()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = s.TryPop()
	assert.False(t, ok)
}

func TestStackCloneIsIndependent(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	c := s.Clone()
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, c.Len())
	v, err := c.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

// Each goroutine pushes one value and immediately pops one; every
// pop must succeed because its own push precedes it.
func TestStackConcurrentPushThenPop(t *testing.T) {
	s := NewStack[int]()
	var wg sync.WaitGroup
	got := make([]int, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Push(i)
			h, err := s.PopHandle()
			if assert.NoError(t, err) {
				got[i] = h.Value()
			}
		}(i)
	}
	wg.Wait()
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	assert.True(t, s.Empty())
}
