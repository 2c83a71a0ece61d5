//go:build !linux && !windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.

package affinity

import "github.com/momentics/hioload-pool/api"

func setAffinityPlatform(cpus []int) error {
	return api.ErrNotSupported
}

func currentAffinityPlatform() ([]int, error) {
	return nil, api.ErrNotSupported
}
