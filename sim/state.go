package sim

import (
	"fmt"
	"reflect"

	"github.com/dsimlab/dsim/sim/idgen"
	"github.com/dsimlab/dsim/sim/queueing"
)

// State holds all queues and arbitrary values of a simulation. Components
// have no references to each other; everything they share lives here,
// reached through typed handles.
//
// Value IDs come from the process-wide generator so that a Key minted by
// one State can never silently alias a value in another. Queue IDs come
// from a state-local counter since they are only ever compared within one
// state.
type State struct {
	store    map[uint64]any
	queues   map[uint64]any
	queueIDs idgen.Generator
}

// NewState creates an empty State.
func NewState() *State {
	return &State{
		store:    make(map[uint64]any),
		queues:   make(map[uint64]any),
		queueIDs: idgen.NewLocal(),
	}
}

// Insert stores a value and returns the typed key for it. Discarding the
// key leaks the value, as there is no other way to reach it.
func Insert[V any](s *State, value V) Key[V] {
	id := uint64(idgen.Global().Generate())
	s.store[id] = &value
	return Key[V]{id: id}
}

// Get returns a pointer to the stored value, through which the value can
// also be modified. It returns nil if the value was removed or the key
// belongs to another state.
func Get[V any](s *State, key Key[V]) *V {
	boxed, ok := s.store[key.id]
	if !ok {
		return nil
	}

	return mustValue[V](boxed)
}

// Remove evicts the value from the store and returns it. The second return
// value is false if the value was already removed.
func Remove[V any](s *State, key Key[V]) (V, bool) {
	boxed, ok := s.store[key.id]
	if !ok {
		var zero V
		return zero, false
	}

	delete(s.store, key.id)

	return *mustValue[V](boxed), true
}

// AddQueue installs a queue into the state and returns the typed handle for
// it. Queues cannot be removed.
func AddQueue[T any](s *State, queue queueing.Queue[T]) QueueID[T] {
	id := uint64(s.queueIDs.Generate())
	s.queues[id] = queue
	return QueueID[T]{id: id}
}

// Send pushes an item onto the queue. It returns
// queueing.ErrCapacityExceeded if the queue is bounded and full.
func Send[T any](s *State, queue QueueID[T], item T) error {
	return mustQueue(s, queue).Push(item)
}

// Recv pops the next item from the queue. The second return value is false
// when the queue is empty.
func Recv[T any](s *State, queue QueueID[T]) (T, bool) {
	return mustQueue(s, queue).Pop()
}

// QueueLen returns the number of items currently in the queue.
func QueueLen[T any](s *State, queue QueueID[T]) int {
	return mustQueue(s, queue).Len()
}

// GetQueue returns the queue behind the handle, so that callers can use
// operations the state itself does not project, such as Peek. Assert to the
// concrete queue type for anything beyond the Queue interface.
func GetQueue[T any](s *State, queue QueueID[T]) queueing.Queue[T] {
	return mustQueue(s, queue)
}

// NumValues returns the number of values currently in the store.
func (s *State) NumValues() int {
	return len(s.store)
}

// NumQueues returns the number of queues installed in the state.
func (s *State) NumQueues() int {
	return len(s.queues)
}

// mustValue recovers the concrete type from a stored box. A mismatch means
// the handle discipline was circumvented, which is not recoverable.
func mustValue[V any](boxed any) *V {
	value, ok := boxed.(*V)
	if !ok {
		panic(fmt.Sprintf(
			"sim: state holds %s where a %s key points, the key type should have ensured this",
			reflect.TypeOf(boxed), reflect.TypeOf((**V)(nil)).Elem(),
		))
	}
	return value
}

func mustQueue[T any](s *State, id QueueID[T]) queueing.Queue[T] {
	boxed, ok := s.queues[id.id]
	if !ok {
		panic("sim: queues cannot be removed, so the queue must exist")
	}

	queue, ok := boxed.(queueing.Queue[T])
	if !ok {
		panic(fmt.Sprintf(
			"sim: state holds %s where a queue of %s is addressed, the handle type should have ensured this",
			reflect.TypeOf(boxed), reflect.TypeOf((*T)(nil)).Elem(),
		))
	}

	return queue
}
