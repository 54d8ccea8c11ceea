// Package queueing provides the queue types that simulation components use
// to pass items to each other through the state.
package queueing

import "errors"

// ErrCapacityExceeded is returned by Push when a bounded queue is full. It
// is the only recoverable error in the kernel; the caller decides whether
// to drop, retry, or log.
var ErrCapacityExceeded = errors.New("queueing: capacity exceeded")

// A Queue holds items of type T in some discipline-specific order. Anything
// that implements Queue can be installed into a simulation state.
type Queue[T any] interface {
	// Push adds an item to the queue. It returns ErrCapacityExceeded if
	// the queue is bounded and full.
	Push(item T) error

	// Pop removes and returns the next item. The second return value is
	// false when the queue is empty.
	Pop() (T, bool)

	// Len returns the number of items currently in the queue.
	Len() int
}

// Empty reports whether q holds no items.
func Empty[T any](q Queue[T]) bool {
	return q.Len() == 0
}
