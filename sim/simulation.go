package sim

import (
	"github.com/dsimlab/dsim/sim/hooking"
	"github.com/dsimlab/dsim/sim/queueing"
)

// HookPosBeforeEvent is a hook position that triggers before an event entry
// is dispatched.
var HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent is a hook position that triggers after an event entry
// was dispatched.
var HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}

// A Simulation aggregates the three parts of a running simulation: the
// state, the scheduler, and the component registry. There is no other
// global state.
//
// Simulation is hookable: registered hooks fire before and after each
// dispatched event entry, which is where loggers and recorders attach.
type Simulation struct {
	hooking.HookableBase

	// State holds the values and queues that components share.
	State *State

	// Scheduler holds the clock and the upcoming events.
	Scheduler *Scheduler

	// Components holds the registered components.
	Components *Components
}

// NewSimulation creates an empty simulation.
func NewSimulation() *Simulation {
	return &Simulation{
		State:      NewState(),
		Scheduler:  NewScheduler(),
		Components: NewComponents(),
	}
}

// Step pops one event entry and dispatches it. It returns false when the
// scheduler is empty, which signifies that the simulation ended.
func (s *Simulation) Step() bool {
	entry := s.Scheduler.Pop()
	if entry == nil {
		return false
	}

	hookCtx := hooking.HookCtx{
		Domain: s,
		Pos:    HookPosBeforeEvent,
		Item:   entry,
	}
	if s.NumHooks() > 0 {
		s.InvokeHook(hookCtx)
	}

	s.Components.ProcessEventEntry(entry, s.Scheduler, s.State)

	if s.NumHooks() > 0 {
		hookCtx.Pos = HookPosAfterEvent
		s.InvokeHook(hookCtx)
	}

	return true
}

// Run steps the simulation until the scheduler is empty. It may not
// terminate if the components keep scheduling new events; use an Executor
// with a termination policy in that case.
func (s *Simulation) Run() {
	for s.Step() {
	}
}

// RegisterComponent adds a component to the simulation and returns its
// typed ID.
func RegisterComponent[E any](
	s *Simulation,
	component Component[E],
) ComponentID[E] {
	return AddComponent(s.Components, component)
}

// NewQueue installs a new unbounded Fifo into the simulation state.
func NewQueue[T any](s *Simulation) QueueID[T] {
	return AddQueue[T](s.State, queueing.NewFifo[T]())
}

// NewBoundedQueue installs a new Fifo that holds at most capacity items.
func NewBoundedQueue[T any](s *Simulation, capacity int) QueueID[T] {
	return AddQueue[T](s.State, queueing.NewBoundedFifo[T](capacity))
}
