package concurrency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWakeSemaphore_PostWait(t *testing.T) {
	s := NewWakeSemaphore(2)

	woke := make(chan struct{})
	go func() {
		s.Wait()
		close(woke)
	}()

	select {
	case <-woke:
		t.Fatal("Wait returned without a token")
	case <-time.After(20 * time.Millisecond):
	}

	assert.True(t, s.Post())
	select {
	case <-woke:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after Post")
	}
}

func TestWakeSemaphore_CapacityCapsTokens(t *testing.T) {
	s := NewWakeSemaphore(2)

	assert.Equal(t, 2, s.PostN(5))
	assert.False(t, s.Post())
	assert.Equal(t, 2, s.Available())

	assert.True(t, s.TryWait())
	assert.Equal(t, 1, s.Reset())
	assert.False(t, s.TryWait())
	assert.Equal(t, 0, s.Available())
}

func TestWakeSemaphore_MinimumCapacity(t *testing.T) {
	s := NewWakeSemaphore(0)
	assert.True(t, s.Post())
	assert.False(t, s.Post())
}
