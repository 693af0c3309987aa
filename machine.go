// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package coroutine

import (
	"fmt"
)

type (
	// machine is the execution backend behind a single parent/child pairing.
	// It provides the two context-switch primitives, plus the springboard's
	// terminal one-way transfer. Implementations must guarantee strictly
	// alternating execution: at most one party runs between any two calls,
	// and every write performed by one party before a handoff happens before
	// the peer's resumption.
	machine interface {
		// start launches body on the child's execution context and suspends
		// the caller (the parent) until the child first hands control back.
		start(body func())

		// swap suspends the calling party and resumes its peer. The caller
		// returns from swap when the peer next hands control back.
		swap()

		// finish is the child's terminal handoff: it resumes the parent
		// without ever suspending (or resuming) the child again.
		finish()
	}

	// Backend selects the execution backend for a coroutine, see WithBackend.
	Backend uint8
)

const (
	// BackendChannel implements the context switch with a pair of capacity-1
	// channels used as binary semaphores. This is the default.
	BackendChannel Backend = iota

	// BackendCond implements the context switch as a sync.Cond ping-pong
	// under a shared mutex. Observationally identical to BackendChannel;
	// relative performance varies by host.
	BackendCond
)

// String returns a human-readable representation of the backend.
func (x Backend) String() string {
	switch x {
	case BackendChannel:
		return "channel"
	case BackendCond:
		return "cond"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(x))
	}
}

func (x Backend) newMachine() machine {
	switch x {
	case BackendChannel:
		return newChanMachine()
	case BackendCond:
		return newCondMachine()
	default:
		panic(`coroutine: unknown backend`)
	}
}
