//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific debug probe integrations.

package control

import (
	"golang.org/x/sys/unix"
)

func registerOSProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.kernel", func() any {
		var uts unix.Utsname
		if err := unix.Uname(&uts); err != nil {
			return err.Error()
		}
		return unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
	})
}
