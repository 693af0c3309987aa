package coroutine

// Structured logging for coroutine lifecycle events.
//
// The logger is configured per record via WithLogger, and is a generic
// logiface logger, allowing integration with any logiface-backed framework
// (stumpy, zerolog, logrus, slog, ...). The nil default is a no-op: logiface
// loggers and builders are nil-safe, so call sites need no guards.

// logLifecycle emits a trace-level lifecycle event with the record's
// standard fields.
func (x *Coroutine[T]) logLifecycle(msg string) {
	x.logger.Trace().
		Str(`backend`, x.backend.String()).
		Str(`state`, x.state.Load().String()).
		Log(msg)
}
