package queueing

import "math"

// A Fifo is an in-order queue with an optional capacity limit.
type Fifo[T any] struct {
	elements []T
	capacity int
}

// NewFifo creates a Fifo without a practical capacity limit.
func NewFifo[T any]() *Fifo[T] {
	return &Fifo[T]{capacity: math.MaxInt}
}

// NewBoundedFifo creates a Fifo that holds at most capacity items.
func NewBoundedFifo[T any](capacity int) *Fifo[T] {
	return &Fifo[T]{
		elements: make([]T, 0, capacity),
		capacity: capacity,
	}
}

// CanPush reports whether the next Push will succeed.
func (f *Fifo[T]) CanPush() bool {
	return len(f.elements) < f.capacity
}

// Push appends an item at the back of the queue.
func (f *Fifo[T]) Push(item T) error {
	if len(f.elements) >= f.capacity {
		return ErrCapacityExceeded
	}

	f.elements = append(f.elements, item)

	return nil
}

// Pop removes and returns the item at the front of the queue.
func (f *Fifo[T]) Pop() (T, bool) {
	if len(f.elements) == 0 {
		var zero T
		return zero, false
	}

	item := f.elements[0]
	f.elements = f.elements[1:]

	return item, true
}

// Peek returns the item at the front of the queue without removing it.
func (f *Fifo[T]) Peek() (T, bool) {
	if len(f.elements) == 0 {
		var zero T
		return zero, false
	}

	return f.elements[0], true
}

// Len returns the number of items in the queue.
func (f *Fifo[T]) Len() int {
	return len(f.elements)
}

// Capacity returns the maximum number of items the queue can hold.
func (f *Fifo[T]) Capacity() int {
	return f.capacity
}

// Clear removes all items in the queue.
func (f *Fifo[T]) Clear() {
	f.elements = nil
}
