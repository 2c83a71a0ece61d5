//go:build linux

package affinity

import (
	"runtime"
	"testing"

	"github.com/momentics/hioload-pool/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAffinity_RoundTrip(t *testing.T) {
	type result struct {
		before, after []int
		err           error
	}
	res := make(chan result, 1)

	// The goroutine exits still locked, so its pinned thread is discarded.
	go func() {
		runtime.LockOSThread()
		var r result
		defer func() { res <- r }()

		if r.before, r.err = Current(); r.err != nil || len(r.before) == 0 {
			return
		}
		if r.err = SetAffinity(r.before[0]); r.err != nil {
			return
		}
		r.after, r.err = Current()
	}()

	r := <-res
	require.NoError(t, r.err)
	require.NotEmpty(t, r.before)
	assert.Equal(t, []int{r.before[0]}, r.after)
}

func TestSetAffinity_Invalid(t *testing.T) {
	assert.ErrorIs(t, SetAffinity(), api.ErrInvalidArgument)
	assert.ErrorIs(t, SetAffinity(-1), api.ErrInvalidArgument)
}
