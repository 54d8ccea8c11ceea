package sim

import "time"

type endCondition int

const (
	endWhenEmpty endCondition = iota
	endAtTime
	endAfterSteps
)

// An Executor drives a simulation to completion under a termination policy.
// Executors are values; configuring one returns a copy, so a configured
// executor can be reused across simulations.
type Executor struct {
	condition  endCondition
	timeLimit  time.Duration
	maxSteps   int
	sideEffect func(*Simulation)
}

// Unbound returns an executor that runs until the scheduler is empty.
func Unbound() Executor {
	return Executor{condition: endWhenEmpty}
}

// Timed returns an executor that dispatches every event scheduled at or
// before limit. If the scheduler empties earlier, execution stops early and
// the clock stays at the last dispatched entry's time, not at limit.
func Timed(limit time.Duration) Executor {
	return Executor{condition: endAtTime, timeLimit: limit}
}

// Steps returns an executor that dispatches at most steps events, stopping
// early if the scheduler empties.
func Steps(steps int) Executor {
	return Executor{condition: endAfterSteps, maxSteps: steps}
}

// WithSideEffect registers a function called after each successful step
// with a view of the simulation. It is never called on the terminating
// empty-scheduler step. The side effect must not mutate the simulation.
func (e Executor) WithSideEffect(f func(*Simulation)) Executor {
	e.sideEffect = f
	return e
}

// Execute runs the simulation until the executor's end condition is
// reached.
func (e Executor) Execute(s *Simulation) {
	switch e.condition {
	case endAtTime:
		for next := s.Scheduler.Peek(); next != nil && next.Time() <= e.timeLimit; next = s.Scheduler.Peek() {
			e.step(s)
		}
	case endAfterSteps:
		for i := 0; i < e.maxSteps; i++ {
			if !e.step(s) {
				break
			}
		}
	default:
		for e.step(s) {
		}
	}
}

func (e Executor) step(s *Simulation) bool {
	if !s.Step() {
		return false
	}

	if e.sideEffect != nil {
		e.sideEffect(s)
	}

	return true
}
