//go:build linux

package concurrency

import (
	"testing"

	"github.com/momentics/hioload-pool/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadGroup_AppliesAttributes(t *testing.T) {
	tg := NewThreadGroup()
	base, err := threadNice()
	require.NoError(t, err)
	// Raising the nice value never needs privileges.
	nice := min(base+1, 19)

	type observed struct {
		name string
		nice int
		tid  int
		err  error
	}
	got := make(chan observed, 1)

	require.NoError(t, tg.AddThread(func() {
		var o observed
		o.tid = CurrentThreadID()
		if o.name, o.err = threadName(); o.err == nil {
			o.nice, o.err = threadNice()
		}
		got <- o
	}, &api.ThreadAttributes{Name: "hioload-pool-worker-0", Nice: &nice}))
	tg.JoinAll()

	o := <-got
	require.NoError(t, o.err)
	assert.Equal(t, "hioload-pool-wo", o.name)
	assert.Equal(t, nice, o.nice)
	assert.Positive(t, o.tid)
}
