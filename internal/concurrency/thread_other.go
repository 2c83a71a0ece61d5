//go:build !linux

// hioload-pool/internal/concurrency/thread_other.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without per-thread naming or priority.

package concurrency

import "github.com/momentics/hioload-pool/api"

func setThreadName(string) error {
	return nil
}

func threadName() (string, error) {
	return "", api.ErrNotSupported
}

func setThreadNice(int) error {
	return api.ErrNotSupported
}

func threadNice() (int, error) {
	return 0, api.ErrNotSupported
}

// CurrentThreadID returns -1 where thread ids are not exposed.
func CurrentThreadID() int {
	return -1
}
