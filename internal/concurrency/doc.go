// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS-thread plumbing for hioload-pool: a join-able thread group that prepares
// each worker thread (name, CPU affinity, nice value) before running its entry
// point. Workers that need thread attributes stay locked to their OS thread
// and never unlock, so a modified thread is discarded when its worker exits.
package concurrency
