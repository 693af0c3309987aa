// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package coroutine

import (
	"unsafe"

	"github.com/joeycumines/logiface"
)

type (
	// Entry is a coroutine's top-level function. It receives the record
	// pairing it with its parent, and the argument passed at creation, which
	// may be nil.
	//
	// Returning from Entry terminates the coroutine; the parent observes
	// termination as a nil return from Coroutine.From. A well-behaved Entry
	// that consumes input must return after Coroutine.From returns nil.
	Entry[T any] func(c *Coroutine[T], arg *T)

	// Coroutine is the rendezvous record pairing a parent coroutine with one
	// child. Its identity is its address; the parent holds the only
	// long-lived pointer. The record is shared between the two parties but
	// never accessed concurrently: each party touches it only while running,
	// and the swap orders those accesses.
	//
	// Instances must be initialized via New, or NewGivenMemory.
	Coroutine[T any] struct {
		// betteralign:ignore

		entry Entry[T] // nil once the child has returned
		value *T       // rendezvous cell, meaningful iff full
		full  bool     // false = empty sentinel

		mach    machine
		backend Backend
		state   atomicState

		releaseHook   func() // configurable
		dropOnRelease bool   // set by the allocator-based constructor
		released      bool

		logger  *logiface.Logger[logiface.Event] // configurable
		metrics *metricsState                    // configurable, nil = disabled
	}
)

// RecordSize returns the concrete size of the Coroutine record for a payload
// type, e.g. for sizing static-storage allocations used with NewGivenMemory.
func RecordSize[T any]() uintptr {
	return unsafe.Sizeof(Coroutine[T]{})
}

// New creates a coroutine and enters it. The child runs immediately, on its
// own stack, until it first suspends; New then returns the record pairing it
// with the caller.
//
// The argument is delivered to entry, and may be nil. A release hook is
// installed so that the record's internal references are dropped when the
// caller observes termination (inside From or CloseAndJoin).
//
// A panic will occur if entry is nil, or an invalid option is provided.
func New[T any](entry Entry[T], arg *T, opts ...Option) *Coroutine[T] {
	c := new(Coroutine[T])
	c.init(entry, arg, opts)
	c.dropOnRelease = true
	c.bootstrap()
	return c
}

// NewGivenMemory is New, over caller-supplied record memory: it initialises
// rec in place, so the record itself is not allocated. Each call still
// allocates the backend's switching state (and, with WithMetrics, the
// counters), as well as the child's goroutine. The record must outlive the
// coroutine; it may be static, pooled, or embedded
// in a larger allocation. A record may be reused after release. See also
// RecordSize.
//
// No release hook is installed; the caller owns the memory. WithReleaseFunc
// may be used to observe release.
//
// A panic will occur if rec or entry is nil, rec is already in use, or an
// invalid option is provided.
func NewGivenMemory[T any](rec *Coroutine[T], entry Entry[T], arg *T, opts ...Option) *Coroutine[T] {
	if rec == nil {
		panic(`coroutine: nil record`)
	}
	if rec.mach != nil && !rec.released {
		panic(`coroutine: record already in use`)
	}
	rec.init(entry, arg, opts)
	rec.bootstrap()
	return rec
}

func (x *Coroutine[T]) init(entry Entry[T], arg *T, opts []Option) {
	if entry == nil {
		panic(`coroutine: nil entry`)
	}

	cfg, err := resolveOptions(opts)
	if err != nil {
		panic(err)
	}

	// assigned field-wise: the record embeds an atomic, and may be reused
	x.entry = entry
	x.value, x.full = arg, true
	x.mach = cfg.backend.newMachine()
	x.backend = cfg.backend
	x.releaseHook = cfg.releaseFunc
	x.dropOnRelease = false
	x.released = false
	x.logger = cfg.logger
	x.metrics = nil
	if cfg.metricsEnabled {
		x.metrics = new(metricsState)
	}
	x.state.Store(StateCreated)
}

// bootstrap enters the child for the first time, returning once the child
// has handed control back.
func (x *Coroutine[T]) bootstrap() {
	x.logLifecycle(`coroutine created`)
	x.state.Store(StateRunningChild)
	x.mach.start(x.springboard)
}

// springboard is the first and only function executed on the child's stack.
// It pulls the argument from the rendezvous cell (resetting it to empty, so
// the parent's next From correctly blocks until the first datum), runs the
// entry function, marks the record terminated, and performs the final
// one-way transfer back to the parent. It never returns control to the
// child.
func (x *Coroutine[T]) springboard() {
	arg := x.value
	x.value, x.full = nil, false

	x.entry(x, arg)

	x.entry = nil
	x.state.Store(StateTerminated)
	x.metrics.markTerminated()
	x.logLifecycle(`coroutine terminated`)
	x.mach.finish()
}

// swap suspends the calling party and resumes the peer, maintaining the
// observable state.
func (x *Coroutine[T]) swap() {
	if x.state.Load() == StateRunningChild {
		x.state.Store(StateRunningParent)
	} else {
		x.state.Store(StateRunningChild)
	}
	x.metrics.incSwitches()
	x.mach.swap()
}

// YieldTo deposits a payload in the rendezvous cell and transfers control to
// the peer. A nil payload is the end-of-stream marker, never user data. The
// call returns when the peer next transfers control back, at which point the
// cell holds either the peer's next datum or the empty sentinel.
//
// A panic will occur if called after the record was released, or if the
// child has already terminated.
func (x *Coroutine[T]) YieldTo(v *T) {
	if x.released {
		panic(`coroutine: use after release`)
	}
	if x.entry == nil {
		panic(`coroutine: yield to terminated coroutine`)
	}
	x.value, x.full = v, true
	x.swap()
}

// From consumes the next payload from the peer, transferring control to it
// first if the cell is empty. A nil return means the peer yielded the
// end-of-stream marker, or (for the parent) that the child terminated; on
// observing termination, From also releases backing resources.
//
// After release, From returns nil without transferring control.
func (x *Coroutine[T]) From() *T {
	if x.released {
		return nil
	}
	if x.entry != nil && !x.full {
		x.swap() // block until the peer deposits a datum or terminates
	}
	if x.entry == nil {
		x.release()
		return nil
	}
	v := x.value
	x.value, x.full = nil, false
	if v != nil {
		x.metrics.incDeliveries()
	}
	return v
}

// CloseAndJoin signals end of input to the child and waits for it to return,
// then releases backing resources. The child receives the nil marker from
// each of its From calls; a well-behaved child falls out of its consume loop
// and returns, which is what bounds this loop.
//
// CloseAndJoin is idempotent: closing an already-terminated (or released)
// record releases at most once and never blocks.
func (x *Coroutine[T]) CloseAndJoin() {
	for x.entry != nil {
		x.YieldTo(nil)
	}
	x.release()
}

// Switch transfers control to the peer with no payload semantics: the
// rendezvous cell is untouched. If the child has already terminated, Switch
// is a no-op.
//
// A panic will occur if called after the record was released.
func (x *Coroutine[T]) Switch() {
	if x.released {
		panic(`coroutine: use after release`)
	}
	if x.entry != nil {
		x.swap()
	}
}

// State returns the record's current lifecycle state.
func (x *Coroutine[T]) State() State {
	return x.state.Load()
}

// Metrics returns a snapshot of the record's counters, and whether metrics
// collection is enabled (see WithMetrics).
func (x *Coroutine[T]) Metrics() (Metrics, bool) {
	if x.metrics == nil {
		return Metrics{}, false
	}
	return x.metrics.snapshot(), true
}

// release reclaims backing resources after termination. Runs at most once.
func (x *Coroutine[T]) release() {
	if x.released {
		return
	}
	x.released = true
	hook := x.releaseHook
	x.releaseHook = nil
	if x.dropOnRelease {
		x.value = nil
		x.mach = nil
	}
	x.state.Store(StateReleased)
	x.logLifecycle(`coroutine released`)
	if hook != nil {
		hook()
	}
}
