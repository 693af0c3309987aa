package coroutine_test

import (
	"fmt"

	"github.com/joeycumines/go-coroutine"
)

// Demonstrates the generator pattern: a child yields a bounded stream, and
// the parent consumes until the nil end-of-stream marker.
func ExampleNew() {
	c := coroutine.New(func(c *coroutine.Coroutine[int], _ *int) {
		for i := 0; i < 4; i++ {
			c.YieldTo(&i)
		}
	}, nil)

	sum := 0
	for v := c.From(); v != nil; v = c.From() {
		sum += *v
	}
	fmt.Println("sum:", sum)

	// output:
	// sum: 6
}

// Demonstrates caller-supplied record memory: nothing is allocated for the
// record, and the release hook observes reclamation.
func ExampleNewGivenMemory() {
	var rec coroutine.Coroutine[int]
	arg := 21

	c := coroutine.NewGivenMemory(&rec, func(c *coroutine.Coroutine[int], arg *int) {
		v := *arg * 2
		c.YieldTo(&v)
	}, &arg, coroutine.WithReleaseFunc(func() { fmt.Println("released") }))

	fmt.Println(*c.From())
	fmt.Println(c.From() == nil)

	// output:
	// 42
	// released
	// true
}

// Demonstrates bidirectional use of the rendezvous cell: the parent sends
// requests downward, and the child replies upward, until the parent closes
// the input side.
func ExampleCoroutine_CloseAndJoin() {
	c := coroutine.New(func(c *coroutine.Coroutine[string], _ *string) {
		for v := c.From(); v != nil; v = c.From() {
			reply := *v + " with goatee"
			c.YieldTo(&reply)
		}
	}, nil)

	for _, name := range []string{"kirk", "spock", "mccoy"} {
		c.YieldTo(&name)
		fmt.Println(*c.From())
	}
	c.CloseAndJoin()

	// output:
	// kirk with goatee
	// spock with goatee
	// mccoy with goatee
}

// Demonstrates payload-free cooperative hand-off: the parties simply trade
// the processor, with no value-passing semantics.
func ExampleCoroutine_Switch() {
	c := coroutine.New(func(c *coroutine.Coroutine[struct{}], _ *struct{}) {
		for i := 0; i < 3; i++ {
			fmt.Println("child", i)
			c.Switch()
		}
	}, nil)

	for i := 0; i < 2; i++ {
		fmt.Println("parent", i)
		c.Switch()
	}
	c.CloseAndJoin()

	// output:
	// child 0
	// parent 0
	// child 1
	// parent 1
	// child 2
}
