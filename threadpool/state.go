// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Control states observed by worker threads.

package threadpool

// State is the control value all workers observe through the gate.
type State int32

const (
	// StateStop is both the initial state and the state after Stop.
	StateStop State = iota
	// StateRun lets workers block on the queue for new jobs.
	StateRun
	// StateDrain makes workers empty the queue without blocking.
	StateDrain
	// StateSuspend sends a released worker straight back to the gate.
	StateSuspend
)

func (s State) String() string {
	switch s {
	case StateStop:
		return "stop"
	case StateRun:
		return "run"
	case StateDrain:
		return "drain"
	case StateSuspend:
		return "suspend"
	default:
		return "unknown"
	}
}
