// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Cross-platform debug probes.

package control

import (
	"runtime"

	"github.com/momentics/hioload-pool/affinity"
)

// RegisterPlatformProbes installs CPU and scheduler probes plus any
// platform-specific ones.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.gomaxprocs", func() any {
		return runtime.GOMAXPROCS(0)
	})
	dp.RegisterProbe("platform.affinity", probeAffinity)
	registerOSProbes(dp)
}

// probeAffinity reports the CPU set of the thread that runs the probe.
func probeAffinity() any {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	cpus, err := affinity.Current()
	if err != nil {
		return err.Error()
	}
	return cpus
}
