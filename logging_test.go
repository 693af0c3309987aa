// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package coroutine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

func newTestLogger(buf *bytes.Buffer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(buf),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelTrace),
	).Logger()
}

func TestWithLogger_lifecycleEvents(t *testing.T) {
	var buf bytes.Buffer

	c := New(func(c *Coroutine[int], _ *int) {
		v := 1
		c.YieldTo(&v)
	}, nil, WithLogger(newTestLogger(&buf)))

	if c.From() == nil {
		t.Fatal("expected a value")
	}
	c.CloseAndJoin()

	out := buf.String()
	for _, want := range []string{
		`coroutine created`,
		`coroutine terminated`,
		`coroutine released`,
		`"backend":"channel"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}

	if got := strings.Count(out, `coroutine released`); got != 1 {
		t.Errorf("expected exactly one release event, got %d", got)
	}
}

func TestWithLogger_nilLoggerIsNoop(t *testing.T) {
	c := New(func(c *Coroutine[int], _ *int) {}, nil, WithLogger(nil))
	c.CloseAndJoin()
}

func TestWithLogger_disabledLevelSuppressesEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(&buf),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelInformational),
	).Logger()

	c := New(func(c *Coroutine[int], _ *int) {}, nil, WithLogger(logger))
	c.CloseAndJoin()

	if buf.Len() != 0 {
		t.Errorf("expected no output below the configured level, got:\n%s", buf.String())
	}
}
