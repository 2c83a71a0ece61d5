// File: api/threadgroup.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread creation and join contract, plus per-thread attributes.

package api

// ThreadAttributes describe how a worker thread is prepared before its entry
// point runs. Any non-zero field locks the worker goroutine to its OS thread
// for the whole lifetime of the worker.
type ThreadAttributes struct {
	// Name is applied to the OS thread (truncated to the platform limit).
	Name string `yaml:"name" json:"name"`

	// CPUs restricts the thread to the listed logical CPUs. Empty means any.
	CPUs []int `yaml:"cpus" json:"cpus"`

	// Nice adjusts the scheduling priority of the thread when non-nil.
	Nice *int `yaml:"nice" json:"nice"`

	// LockOSThread dedicates an OS thread even when nothing else is set.
	LockOSThread bool `yaml:"lock_os_thread" json:"lock_os_thread"`
}

// NeedsOSThread reports whether the attributes require a dedicated OS thread.
func (a *ThreadAttributes) NeedsOSThread() bool {
	if a == nil {
		return false
	}
	return a.LockOSThread || a.Name != "" || len(a.CPUs) > 0 || a.Nice != nil
}

// ThreadGroup creates threads running a given entry point and joins them all.
type ThreadGroup interface {
	// AddThread starts one thread. It returns only after the thread has been
	// prepared, so a nil error means entry is about to run.
	AddThread(entry func(), attrs *ThreadAttributes) error

	// NumThreads returns the number of live threads.
	NumThreads() int

	// JoinAll waits for every thread to return.
	JoinAll()
}
