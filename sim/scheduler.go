package sim

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/rs/xid"
)

// An EventEntry is a scheduled unit of work: a payload to be delivered to a
// component at a point in simulated time. Entries are created by Schedule,
// kept ordered by the scheduler, and unpacked by the component registry on
// dispatch.
type EventEntry struct {
	// ID is a unique identifier for the entry, usable for tracing.
	ID string

	time      time.Duration
	component uint64
	seq       uint64
	event     any
}

// Time returns the absolute simulation time at which the entry fires.
func (e *EventEntry) Time() time.Duration {
	return e.time
}

// ComponentIndex returns the raw ID of the component the entry targets.
func (e *EventEntry) ComponentIndex() uint64 {
	return e.component
}

// Event returns the type-erased payload. Instrumentation may inspect it;
// dispatch goes through the typed path in the component registry.
func (e *EventEntry) Event() any {
	return e.event
}

// A Scheduler keeps the current simulation time and the upcoming events.
// Events fire in timestamp order; entries that share a timestamp fire in
// the order they were scheduled.
type Scheduler struct {
	events eventHeap
	clock  *simClock
	seq    uint64
}

// NewScheduler creates an empty Scheduler with the clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{clock: &simClock{}}
}

// Schedule inserts an entry that delivers event to component at the current
// time plus delay. A negative delay would move time backwards and panics.
func Schedule[E any](
	s *Scheduler,
	delay time.Duration,
	component ComponentID[E],
	event E,
) {
	if delay < 0 {
		panic(fmt.Sprintf(
			"sim: cannot schedule an event in the past, delay %s, now %s",
			delay, s.Time(),
		))
	}

	s.seq++
	entry := &EventEntry{
		ID:        xid.New().String(),
		time:      s.Time() + delay,
		component: component.id,
		seq:       s.seq,
		event:     event,
	}
	heap.Push(&s.events, entry)
}

// ScheduleNow inserts an entry that fires at the current time, after every
// entry already scheduled for the current time.
func ScheduleNow[E any](s *Scheduler, component ComponentID[E], event E) {
	Schedule(s, 0, component, event)
}

// Pop removes and returns the earliest entry and advances the clock to the
// entry's time. It returns nil when no events are left.
func (s *Scheduler) Pop() *EventEntry {
	if s.events.Len() == 0 {
		return nil
	}

	entry := heap.Pop(&s.events).(*EventEntry)
	s.clock.now = entry.time

	return entry
}

// Peek returns the earliest entry without removing it or touching the
// clock. It returns nil when no events are left.
func (s *Scheduler) Peek() *EventEntry {
	if s.events.Len() == 0 {
		return nil
	}

	return s.events[0]
}

// Len returns the number of scheduled entries.
func (s *Scheduler) Len() int {
	return s.events.Len()
}

// Time returns the current simulation time.
func (s *Scheduler) Time() time.Duration {
	return s.clock.now
}

// Clock returns a read-only view of the simulation clock. The view is cheap
// to copy and always observes the scheduler's current time.
func (s *Scheduler) Clock() ClockRef {
	return ClockRef{clock: s.clock}
}

type eventHeap []*EventEntry

// Len returns the number of entries in the heap.
func (h eventHeap) Len() int {
	return len(h)
}

// Less determines the order between two entries. Entries with the same time
// compare by insertion sequence, which makes same-timestamp dispatch FIFO.
func (h eventHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}

// Swap changes the position of two entries in the heap.
func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Push adds an entry to the heap.
func (h *eventHeap) Push(x any) {
	entry := x.(*EventEntry)
	*h = append(*h, entry)
}

// Pop removes and returns the entry that fires next.
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}
