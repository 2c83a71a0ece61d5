package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedQueue_FIFO(t *testing.T) {
	q := NewFixedQueue[int](4)
	for i := range 4 {
		require.NoError(t, q.TryPushBack(i))
	}
	assert.Equal(t, 4, q.Len())

	for i := range 4 {
		v, ok := q.TryPopFront()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := q.TryPopFront()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestFixedQueue_Full(t *testing.T) {
	q := NewFixedQueue[string](1)
	require.NoError(t, q.TryPushBack("a"))
	assert.ErrorIs(t, q.TryPushBack("b"), ErrQueueFull)
	assert.Equal(t, 1, q.Cap())
}

func TestFixedQueue_PushBackBlocksUntilSlotFrees(t *testing.T) {
	q := NewFixedQueue[int](1)
	require.NoError(t, q.PushBack(1))

	pushed := make(chan error, 1)
	go func() { pushed <- q.PushBack(2) }()

	select {
	case <-pushed:
		t.Fatal("PushBack returned while queue was full")
	case <-time.After(20 * time.Millisecond):
	}

	assert.Equal(t, 1, q.PopFront())
	select {
	case err := <-pushed:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("PushBack did not unblock")
	}
	assert.Equal(t, 2, q.PopFront())
}

func TestFixedQueue_DisableFailsBlockedPush(t *testing.T) {
	q := NewFixedQueue[int](1)
	require.NoError(t, q.PushBack(1))

	pushed := make(chan error, 1)
	go func() { pushed <- q.PushBack(2) }()
	time.Sleep(10 * time.Millisecond)

	q.Disable()
	select {
	case err := <-pushed:
		assert.ErrorIs(t, err, ErrQueueDisabled)
	case <-time.After(5 * time.Second):
		t.Fatal("Disable did not wake blocked PushBack")
	}
	assert.False(t, q.IsEnabled())
	assert.ErrorIs(t, q.TryPushBack(3), ErrQueueDisabled)

	// Disabled queues still hand out what they hold.
	v, ok := q.TryPopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	q.Enable()
	assert.NoError(t, q.TryPushBack(4))
}

func TestFixedQueue_PopFrontBlocksUntilPush(t *testing.T) {
	q := NewFixedQueue[int](2)
	got := make(chan int, 1)
	go func() { got <- q.PopFront() }()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, q.PushBack(7))
	select {
	case v := <-got:
		assert.Equal(t, 7, v)
	case <-time.After(5 * time.Second):
		t.Fatal("PopFront did not return")
	}
}

func TestFixedQueue_RemoveAll(t *testing.T) {
	q := NewFixedQueue[int](3)
	for i := range 3 {
		require.NoError(t, q.PushBack(i))
	}
	assert.Equal(t, 3, q.RemoveAll())
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.RemoveAll())
	assert.NoError(t, q.TryPushBack(9))
}

func TestFixedQueue_ConcurrentProducersConsumers(t *testing.T) {
	q := NewFixedQueue[int](16)
	const (
		producers = 8
		perProd   = 500
	)

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := range perProd {
				assert.NoError(t, q.PushBack(p*perProd+i))
			}
		}(p)
	}

	seen := make(map[int]bool, producers*perProd)
	for range producers * perProd {
		v := q.PopFront()
		require.False(t, seen[v], "duplicate item %d", v)
		seen[v] = true
	}
	wg.Wait()
	assert.Len(t, seen, producers*perProd)
}
