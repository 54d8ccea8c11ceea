// Package sim is a discrete-event simulation kernel. Users model a system
// as components that react to events delivered at points in simulated
// time; the kernel executes the events in timestamp order, lets handlers
// schedule further events, and gives components a shared, type-safe store
// of values and queues to communicate through.
//
// The building blocks are State, Scheduler, Components, and the Simulation
// façade that aggregates one of each. Time is purely logical: a
// time.Duration offset from simulation start that never decreases.
// Execution is strictly single-threaded; a handler always runs to
// completion before the next event is considered.
//
// # Typed handles
//
// Registration returns opaque handles - ComponentID, Key, QueueID - that
// carry the payload type as a type parameter. Every operation at the
// boundary is statically typed even though the interior storage is
// type-erased, so mismatched use does not compile:
//
//	state := sim.NewState()
//	intKey := sim.Insert(state, 7)
//	strKey := sim.Insert(state, "str")
//	_ = sim.Get(state, intKey) // *int
//	// var v *int = sim.Get(state, strKey)  // does not compile
//
// Likewise, a ComponentID for a component handling ProducerEvent cannot be
// used to schedule a ConsumerEvent. Handles are cheap to copy, comparable,
// and usable as map keys.
//
// # Events and dispatch
//
// Schedule erases the event's static type and stores it in the scheduler's
// min-heap; the component registry recovers it on dispatch through a
// closure captured at registration. Entries fire in timestamp order, and
// entries sharing a timestamp fire in the order they were scheduled. A
// failed payload recovery means the handle discipline was circumvented and
// panics; it is never a user-visible error. The only recoverable error in
// the kernel is queueing.ErrCapacityExceeded on a full bounded queue.
//
// # Driving a simulation
//
// Simulation.Step dispatches one event; Simulation.Run loops until the
// scheduler is empty. The Executor adds termination policies (Unbound,
// Timed, Steps) and an optional per-step side effect. Instrumentation such
// as EventLogger attaches through hooks and observes each dispatch without
// the components knowing.
package sim
