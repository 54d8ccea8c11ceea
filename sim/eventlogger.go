package sim

import (
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/dsimlab/dsim/sim/hooking"
)

// EventLogger is a hook that logs every dispatched event entry.
type EventLogger struct {
	logger *logrus.Logger
}

// NewEventLogger returns an EventLogger that writes through the given
// logger. Pass logrus.StandardLogger() to use the process-wide logger.
func NewEventLogger(logger *logrus.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// Func writes the entry information into the logger.
func (l *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	entry, ok := ctx.Item.(*EventEntry)
	if !ok {
		return
	}

	eventType := "<nil>"
	if event := entry.Event(); event != nil {
		eventType = reflect.TypeOf(event).String()
	}

	l.logger.WithFields(logrus.Fields{
		"entry":     entry.ID,
		"time":      entry.Time(),
		"component": entry.ComponentIndex(),
	}).Info(eventType)
}
