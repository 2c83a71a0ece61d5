package threadpool_test

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/momentics/hioload-pool/threadpool"
)

func ExampleFixedThreadPool() {
	p := threadpool.New(4, 32)
	if err := p.Start(); err != nil {
		fmt.Println("start:", err)
		return
	}
	defer p.Stop()

	var sum atomic.Int64
	for i := 1; i <= 100; i++ {
		if err := p.EnqueueJob(func() { sum.Add(int64(i)) }); err != nil {
			fmt.Println("enqueue:", err)
			return
		}
	}
	p.Drain()
	fmt.Println(sum.Load())
	// Output: 5050
}

func ExampleFixedThreadPool_TryEnqueueJob() {
	p := threadpool.New(1, 1)
	err := p.TryEnqueueJob(func() {})
	fmt.Println(errors.Is(err, threadpool.ErrQueueDisabled))
	// Output: true
}
