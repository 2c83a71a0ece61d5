package threadpool

import "time"

const (
	testTimeout = 5 * time.Second
	tick        = time.Millisecond
)
