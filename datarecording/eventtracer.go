package datarecording

import (
	"reflect"

	"github.com/dsimlab/dsim/sim"
	"github.com/dsimlab/dsim/sim/hooking"
)

// eventTraceTable is where the tracer stores one row per dispatched event.
const eventTraceTable = "event_trace"

// TraceEntry is the row format of the event trace table.
type TraceEntry struct {
	EntryID   string
	TimeNS    int64
	Component uint64
	EventType string
}

// An EventTracer is a hook that records every dispatched event entry into a
// DataRecorder, so that a finished run can be inspected with any SQLite
// client.
type EventTracer struct {
	recorder DataRecorder
}

// NewEventTracer creates an EventTracer writing to the given recorder and
// prepares its table.
func NewEventTracer(recorder DataRecorder) *EventTracer {
	recorder.CreateTable(eventTraceTable, TraceEntry{})
	return &EventTracer{recorder: recorder}
}

// Func records the dispatched entry.
func (t *EventTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEvent {
		return
	}

	entry, ok := ctx.Item.(*sim.EventEntry)
	if !ok {
		return
	}

	eventType := "<nil>"
	if event := entry.Event(); event != nil {
		eventType = reflect.TypeOf(event).String()
	}

	t.recorder.InsertData(eventTraceTable, TraceEntry{
		EntryID:   entry.ID,
		TimeNS:    entry.Time().Nanoseconds(),
		Component: entry.ComponentIndex(),
		EventType: eventType,
	})
}
