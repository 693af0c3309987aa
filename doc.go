// Package coroutine provides stackful, asymmetric, cooperative coroutines,
// paired parent/child, with a single-slot rendezvous channel between each
// pair.
//
// # Model
//
// Each call to [New] (or [NewGivenMemory]) creates one child coroutine and
// returns the [Coroutine] record pairing it with its creator. A coroutine
// carries its own full call stack, so it may suspend and resume from any
// nesting depth. Control transfers only between the two parties of a record:
// exactly one of {parent, child} runs at any instant, and the other is
// suspended at a swap. There is no scheduler, no preemption, and no fairness
// policy; the only suspension points are [Coroutine.YieldTo],
// [Coroutine.From], [Coroutine.Switch], [Coroutine.CloseAndJoin], and the
// child's final return.
//
// # Values
//
// Payloads are pointers. A nil payload is never user data: it always means
// "end of stream" in that direction. A coroutine may yield a pointer to one
// of its own locals; the peer may read and mutate through that pointer until
// it resumes the yielding coroutine. Because control strictly alternates,
// every write performed by one party before a swap is visible to the other
// party when it resumes, with no additional synchronization.
//
// # Execution Backends
//
// Two backends implement the context switch, selected via [WithBackend]:
//   - [BackendChannel] (default): a pair of capacity-1 channels used as
//     binary semaphores.
//   - [BackendCond]: a [sync.Cond] ping-pong under a shared mutex.
//
// The two are observationally indistinguishable for any program that obeys
// the API contract; the choice is purely a performance matter on a given
// host.
//
// # Lifecycle
//
// A record moves Created → RunningChild ⇄ RunningParent → Terminated →
// Released. Termination surfaces to the parent as a nil return from
// [Coroutine.From], which also releases backing resources. Cancellation is
// cooperative: the parent closes the input side with
// [Coroutine.CloseAndJoin], and a well-behaved child observes the nil marker
// and returns.
//
// # Usage
//
//	c := coroutine.New(func(c *coroutine.Coroutine[int], _ *int) {
//	    for i := 0; i < 4; i++ {
//	        v := i
//	        c.YieldTo(&v)
//	    }
//	}, nil)
//
//	sum := 0
//	for v := c.From(); v != nil; v = c.From() {
//	    sum += *v
//	}
//	// sum == 6
//
// There is no hidden global state: everything needed to resume a coroutine
// lives in its record, so independent lineages may be driven from multiple
// host goroutines simultaneously.
package coroutine
