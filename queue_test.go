package syncds

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueTryPopDeliversPushOrder(t *testing.T) {
	q := NewQueue[int]()
	q.Push(3)
	q.Push(1)
	q.Push(2)
	for _, want := range []int{3, 1, 2} {
		v, ok := q.TryPop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := q.TryPop()
	assert.False(t, ok)
}

func TestQueuePopFamilyOnEmpty(t *testing.T) {
	q := NewQueue[string]()
	assert.True(t, q.Empty())
	_, err := q.Pop()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = q.PopHandle()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestQueueCloneIsIndependent(t *testing.T) {
	q := NewQueue[int](WithCapacity[int](3))
	for _, v := range []int{100, 200, 300} {
		q.Push(v)
	}
	c := q.Clone()
	v, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, 100, v)
	q.Push(400)

	assert.Equal(t, 3, c.Len())
	for _, want := range []int{100, 200, 300} {
		h, err := c.PopHandle()
		require.NoError(t, err)
		assert.Equal(t, want, h.Value())
	}
	assert.True(t, c.Empty())
	assert.Equal(t, 3, q.Len())
}

// Two producers push five tagged tasks each while three consumers loop
// on WaitAndPop; one negative sentinel per consumer ends the loop.
func TestQueueProducersAndConsumersStopOnSentinel(t *testing.T) {
	const producers, consumers, perProducer = 2, 3, 5
	q := NewQueue[int]()

	var mu sync.Mutex
	var processed []int
	var consumersWg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		consumersWg.Add(1)
		go func() {
			defer consumersWg.Done()
			for {
				task := q.WaitAndPop()
				if task < 0 {
					return
				}
				mu.Lock()
				processed = append(processed, task)
				mu.Unlock()
			}
		}()
	}

	var want []int
	var producersWg sync.WaitGroup
	for p := 1; p <= producers; p++ {
		for i := 0; i < perProducer; i++ {
			want = append(want, p*100+i)
		}
		producersWg.Add(1)
		go func(p int) {
			defer producersWg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(p*100 + i)
			}
		}(p)
	}
	producersWg.Wait()
	for c := 0; c < consumers; c++ {
		q.Push(-1)
	}
	consumersWg.Wait()

	sort.Ints(processed)
	assert.Equal(t, want, processed)
	assert.True(t, q.Empty())
}
