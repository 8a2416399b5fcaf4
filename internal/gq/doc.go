// Package gq is the public face of the quadrature engine.
//
// It validates requests, picks the generation path and copies the result
// into caller storage:
//
//	GQ, GQN       classical families; Chebyshev kinds use the closed forms,
//	              every other kind goes through the recursion table and
//	              Golub-Welsch
//	GQGen         Golub-Welsch on a caller-supplied recursion
//	VandermondeGQ weights for prescribed nodes and moments
//	GCHB          Chebyshev closed forms only
//
// Outputs are written only after the whole rule has been computed, so a
// failed call leaves them as they were.
//
// # Concurrency
//
// A Dispatcher holds no mutable state and may be shared between goroutines,
// provided each call gets its own output buffers. [Dispatcher.Table] relies
// on this to build several orders at once.
package gq
