package sim

import "time"

// simClock is the authoritative cell holding the current simulation time.
// The scheduler owns it and is the only writer; any number of ClockRefs may
// read it.
type simClock struct {
	now time.Duration
}

// A ClockRef is a read-only view of the simulation clock. It observes the
// latest time at the moment of the Time call.
type ClockRef struct {
	clock *simClock
}

// Time returns the current simulation time.
func (c ClockRef) Time() time.Duration {
	return c.clock.now
}
