//go:build linux

// hioload-pool/internal/concurrency/thread_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux thread naming, priority and identity via golang.org/x/sys/unix.

package concurrency

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func setThreadName(name string) error {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return err
	}
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(p)), 0, 0, 0)
}

func threadName() (string, error) {
	var buf [MaxThreadNameLen + 1]byte
	if err := unix.Prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(buf[:]), nil
}

// setThreadNice relies on Linux applying PRIO_PROCESS to a single thread id.
func setThreadNice(nice int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), nice)
}

func threadNice() (int, error) {
	// The raw syscall returns 20-nice to stay non-negative.
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, unix.Gettid())
	if err != nil {
		return 0, err
	}
	return 20 - prio, nil
}

// CurrentThreadID returns the kernel id of the calling thread.
func CurrentThreadID() int {
	return unix.Gettid()
}
