//go:build !linux
// +build !linux

// control/platform_other.go
// Author: momentics <momentics@gmail.com>
//
// Platforms without extra debug probes.

package control

func registerOSProbes(*DebugProbes) {}
