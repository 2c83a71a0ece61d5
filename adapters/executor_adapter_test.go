package adapters_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/hioload-pool/adapters"
	"github.com/momentics/hioload-pool/threadpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorAdapterSubmit(t *testing.T) {
	p := threadpool.New(2, 4)
	require.NoError(t, p.Start())
	ex := adapters.NewExecutorAdapter(p)
	defer ex.Close()

	var ran atomic.Int64
	for range 20 {
		require.NoError(t, ex.Submit(func() { ran.Add(1) }))
		require.NoError(t, ex.SubmitContext(context.Background(), func() { ran.Add(1) }))
	}
	p.Drain()
	assert.Equal(t, int64(40), ran.Load())
	assert.Equal(t, 2, ex.NumWorkers())
}

func TestExecutorAdapterSubmitContextCancelled(t *testing.T) {
	p := threadpool.New(1, 1)
	require.NoError(t, p.Start())
	ex := adapters.NewExecutorAdapter(p)
	defer ex.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, ex.Submit(func() {
		close(started)
		<-release
	}))
	<-started
	require.NoError(t, ex.Submit(func() {}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := ex.SubmitContext(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}

func TestExecutorAdapterStoppedPool(t *testing.T) {
	ex := adapters.NewExecutorAdapter(threadpool.New(1, 1))
	assert.ErrorIs(t, ex.SubmitContext(context.Background(), func() {}), threadpool.ErrQueueDisabled)
}
