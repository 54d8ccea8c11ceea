package sim

// A ComponentID identifies a component that handles events of type E. It is
// minted by AddComponent and is the only way to address that component when
// scheduling. The type parameter is a marker: scheduling an event of any
// other type on this ID does not compile.
type ComponentID[E any] struct {
	id uint64
}

// A Key identifies a value of type V in the state store. It is minted by
// Insert; the state assigns a numerical ID that is unique throughout the
// running of the process. A Key for a value of type V cannot be used to
// access a value of another type.
type Key[V any] struct {
	id uint64
}

// A QueueID identifies a queue whose items are of type T. It is minted by
// AddQueue and is only meaningful within the state that created it.
type QueueID[T any] struct {
	id uint64
}
