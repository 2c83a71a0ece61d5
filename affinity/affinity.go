// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import (
	"fmt"

	"github.com/momentics/hioload-pool/api"
)

// SetAffinity pins the calling OS thread to the given logical CPUs.
// The caller should hold runtime.LockOSThread, otherwise the goroutine may
// migrate to an unpinned thread.
func SetAffinity(cpus ...int) error {
	if len(cpus) == 0 {
		return fmt.Errorf("affinity: empty CPU list: %w", api.ErrInvalidArgument)
	}
	for _, c := range cpus {
		if c < 0 {
			return fmt.Errorf("affinity: negative CPU %d: %w", c, api.ErrInvalidArgument)
		}
	}
	return setAffinityPlatform(cpus)
}

// Current returns the logical CPUs the calling OS thread may run on.
func Current() ([]int, error) {
	return currentAffinityPlatform()
}
