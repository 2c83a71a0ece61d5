//go:build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity.

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// setAffinityPlatform applies the mask to the calling thread (pid 0).
func setAffinityPlatform(cpus []int) error {
	var set unix.CPUSet
	set.Zero()
	for _, c := range cpus {
		set.Set(c)
	}
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity %v: %w", cpus, err)
	}
	return nil
}

func currentAffinityPlatform() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("affinity: sched_getaffinity: %w", err)
	}
	n := set.Count()
	out := make([]int, 0, n)
	for c := 0; len(out) < n; c++ {
		if set.IsSet(c) {
			out = append(out, c)
		}
	}
	return out, nil
}
