package sim

import (
	"fmt"
	"reflect"

	"github.com/dsimlab/dsim/sim/idgen"
)

// A Component reacts to events of a single declared type E. Components are
// registered once and live for the rest of the simulation.
//
// ProcessEvent runs to completion before any other event is considered. It
// receives:
//   - selfID: the ID of this component, for scheduling events to itself.
//     It is passed in because the ID only exists after the component has
//     been constructed and registered.
//   - event: the occurring event.
//   - scheduler: for reading time and scheduling new events.
//   - state: for the value store and the queues.
type Component[E any] interface {
	ProcessEvent(
		selfID ComponentID[E],
		event E,
		scheduler *Scheduler,
		state *State,
	)
}

// dispatchFunc is the type-erased form of a component stored in the
// registry. It is captured at registration, which is the one place where
// the concrete event type is known.
type dispatchFunc func(entry *EventEntry, scheduler *Scheduler, state *State)

// Components is the container for all registered components. It routes
// event entries to the component they target.
type Components struct {
	dispatchers map[uint64]dispatchFunc
}

// NewComponents creates an empty component registry.
func NewComponents() *Components {
	return &Components{dispatchers: make(map[uint64]dispatchFunc)}
}

// AddComponent registers a component and returns its typed ID. The returned
// ID is the only way to schedule events on the component.
func AddComponent[E any](c *Components, component Component[E]) ComponentID[E] {
	id := uint64(idgen.Global().Generate())

	c.dispatchers[id] = func(entry *EventEntry, scheduler *Scheduler, state *State) {
		// A nil payload is legal when E is an interface type; the
		// assertion below cannot recover it, so deliver the zero E.
		if entry.event == nil {
			var zero E
			component.ProcessEvent(
				ComponentID[E]{id: entry.component}, zero, scheduler, state)
			return
		}

		event, ok := entry.event.(E)
		if !ok {
			panic(fmt.Sprintf(
				"sim: entry holds %s where component %d expects %s, the ID type should have ensured this",
				reflect.TypeOf(entry.event), id, reflect.TypeOf((*E)(nil)).Elem(),
			))
		}

		component.ProcessEvent(
			ComponentID[E]{id: entry.component}, event, scheduler, state)
	}

	return ComponentID[E]{id: id}
}

// ProcessEventEntry delivers the entry to the component it targets. An
// entry addressing an unregistered component is a programming error and
// panics.
func (c *Components) ProcessEventEntry(
	entry *EventEntry,
	scheduler *Scheduler,
	state *State,
) {
	dispatch, ok := c.dispatchers[entry.component]
	if !ok {
		panic(fmt.Sprintf(
			"sim: no component registered under ID %d", entry.component))
	}

	dispatch(entry, scheduler, state)
}

// Len returns the number of registered components.
func (c *Components) Len() int {
	return len(c.dispatchers)
}
