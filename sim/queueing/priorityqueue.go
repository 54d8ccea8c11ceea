package queueing

import (
	"cmp"
	"container/heap"
	"math"
)

// A PriorityQueue pops the greatest item first. Ties among equal items are
// broken arbitrarily.
type PriorityQueue[T any] struct {
	items    itemHeap[T]
	capacity int
}

// NewPriorityQueue creates an unbounded PriorityQueue ordered by the natural
// order of T.
func NewPriorityQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueueFunc[T](cmp.Less[T])
}

// NewBoundedPriorityQueue creates a PriorityQueue ordered by the natural
// order of T that holds at most capacity items.
func NewBoundedPriorityQueue[T cmp.Ordered](capacity int) *PriorityQueue[T] {
	q := NewPriorityQueue[T]()
	q.capacity = capacity
	return q
}

// NewPriorityQueueFunc creates an unbounded PriorityQueue for item types
// without a natural order. The item for which less reports false against
// every other item is popped first.
func NewPriorityQueueFunc[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items:    itemHeap[T]{less: less},
		capacity: math.MaxInt,
	}
}

// NewBoundedPriorityQueueFunc is the bounded variant of
// NewPriorityQueueFunc.
func NewBoundedPriorityQueueFunc[T any](
	capacity int,
	less func(a, b T) bool,
) *PriorityQueue[T] {
	q := NewPriorityQueueFunc(less)
	q.capacity = capacity
	return q
}

// Push adds an item to the queue.
func (q *PriorityQueue[T]) Push(item T) error {
	if len(q.items.elements) >= q.capacity {
		return ErrCapacityExceeded
	}

	heap.Push(&q.items, item)

	return nil
}

// Pop removes and returns the greatest item in the queue.
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if len(q.items.elements) == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&q.items).(T), true
}

// Peek returns the greatest item without removing it.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if len(q.items.elements) == 0 {
		var zero T
		return zero, false
	}

	return q.items.elements[0], true
}

// Len returns the number of items in the queue.
func (q *PriorityQueue[T]) Len() int {
	return len(q.items.elements)
}

// Capacity returns the maximum number of items the queue can hold.
func (q *PriorityQueue[T]) Capacity() int {
	return q.capacity
}

type itemHeap[T any] struct {
	elements []T
	less     func(a, b T) bool
}

func (h itemHeap[T]) Len() int {
	return len(h.elements)
}

// Less inverts the item order so that container/heap, a min-heap, surfaces
// the greatest item at the root.
func (h itemHeap[T]) Less(i, j int) bool {
	return h.less(h.elements[j], h.elements[i])
}

func (h itemHeap[T]) Swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
}

func (h *itemHeap[T]) Push(x any) {
	h.elements = append(h.elements, x.(T))
}

func (h *itemHeap[T]) Pop() any {
	old := h.elements
	n := len(old)
	item := old[n-1]
	h.elements = old[:n-1]
	return item
}
