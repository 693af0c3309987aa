package coroutine

import (
	"sync/atomic"
)

// State represents the current lifecycle state of a coroutine record.
//
// State Machine:
//
//	StateCreated (0) → StateRunningChild (1)        [bootstrap]
//	StateRunningChild (1) ⇄ StateRunningParent (2)  [every swap]
//	StateRunningChild (1) → StateTerminated (3)     [child entry returns]
//	StateTerminated (3) → StateReleased (4)         [From / CloseAndJoin]
//	StateReleased (4) → (terminal)
//
// Transitions are performed only by the running party: immediately before it
// suspends, by the springboard before its final transfer (termination), or by
// the parent when it observes termination (release).
type State uint32

const (
	// StateCreated indicates the record has been initialised but the child
	// has not yet been entered.
	StateCreated State = iota
	// StateRunningChild indicates the child is executing and the parent is
	// suspended.
	StateRunningChild
	// StateRunningParent indicates the parent is executing and the child is
	// suspended.
	StateRunningParent
	// StateTerminated indicates the child's entry function has returned.
	StateTerminated
	// StateReleased indicates the parent has observed termination and any
	// backing resources have been reclaimed.
	StateReleased
)

// String returns a human-readable representation of the state.
func (x State) String() string {
	switch x {
	case StateCreated:
		return "Created"
	case StateRunningChild:
		return "RunningChild"
	case StateRunningParent:
		return "RunningParent"
	case StateTerminated:
		return "Terminated"
	case StateReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// atomicState stores a State, readable from either party (or an observer)
// without tearing. Transitions themselves are not validated; the callers
// uphold the state machine.
type atomicState struct {
	v atomic.Uint32
}

func (x *atomicState) Load() State {
	return State(x.v.Load())
}

func (x *atomicState) Store(state State) {
	x.v.Store(uint32(state))
}
