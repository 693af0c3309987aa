package coroutine

import (
	"sync/atomic"
)

// Metrics is a point-in-time snapshot of a coroutine's counters, see
// Coroutine.Metrics and WithMetrics.
type Metrics struct {
	// Switches is the number of completed swaps (in either direction),
	// excluding the child's terminal transfer.
	Switches uint64
	// Deliveries is the number of non-nil payloads consumed via From.
	Deliveries uint64
	// Terminated is whether the child's entry function has returned.
	Terminated bool
}

// metricsState backs Metrics. All counters are atomics so that a snapshot
// may be taken by an observer while either party runs.
type metricsState struct {
	switches   atomic.Uint64
	deliveries atomic.Uint64
	terminated atomic.Bool
}

func (x *metricsState) incSwitches() {
	if x != nil {
		x.switches.Add(1)
	}
}

func (x *metricsState) incDeliveries() {
	if x != nil {
		x.deliveries.Add(1)
	}
}

func (x *metricsState) markTerminated() {
	if x != nil {
		x.terminated.Store(true)
	}
}

func (x *metricsState) snapshot() Metrics {
	return Metrics{
		Switches:   x.switches.Load(),
		Deliveries: x.deliveries.Load(),
		Terminated: x.terminated.Load(),
	}
}
