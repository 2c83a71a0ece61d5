//go:build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific implementation for setting thread CPU affinity.

package affinity

import (
	"fmt"
	"math/bits"

	"github.com/momentics/hioload-pool/api"
	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// setAffinityPlatform sets thread affinity to the given CPUs of the current processor group.
func setAffinityPlatform(cpus []int) error {
	var mask uintptr
	for _, c := range cpus {
		if c >= bits.UintSize {
			return fmt.Errorf("affinity: CPU %d outside processor group: %w", c, api.ErrInvalidArgument)
		}
		mask |= uintptr(1) << uint(c)
	}
	ret, _, err := procSetThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask: %w", err)
	}
	return nil
}

func currentAffinityPlatform() ([]int, error) {
	return nil, api.ErrNotSupported
}
