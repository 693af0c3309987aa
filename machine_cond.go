// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package coroutine

import (
	"sync"
)

// condMachine switches contexts with a condition-variable ping-pong under a
// shared mutex. childTurn is the turn variable: the running party flips it,
// wakes the peer, and waits until the turn returns to itself. The mutex is
// held only across the flip and the wait, never across user code.
type condMachine struct {
	mu        sync.Mutex
	cond      sync.Cond
	childTurn bool
}

func newCondMachine() *condMachine {
	x := &condMachine{}
	x.cond.L = &x.mu
	return x
}

func (x *condMachine) start(body func()) {
	go func() {
		x.mu.Lock()
		for !x.childTurn {
			x.cond.Wait()
		}
		x.mu.Unlock()
		body()
	}()

	x.mu.Lock()
	x.childTurn = true
	x.cond.Broadcast()
	for x.childTurn {
		x.cond.Wait()
	}
	x.mu.Unlock()
}

func (x *condMachine) swap() {
	x.mu.Lock()
	me := x.childTurn // only the running party calls swap
	x.childTurn = !me
	x.cond.Broadcast()
	for x.childTurn != me {
		x.cond.Wait()
	}
	x.mu.Unlock()
}

func (x *condMachine) finish() {
	x.mu.Lock()
	x.childTurn = false
	x.cond.Broadcast()
	x.mu.Unlock()
}
