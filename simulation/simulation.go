// Package simulation bundles a kernel simulation with the services most
// runs want around it: a data recorder, a monitoring server, and optional
// event logging. Use the Builder to assemble one.
package simulation

import (
	"github.com/dsimlab/dsim/datarecording"
	"github.com/dsimlab/dsim/monitoring"
	"github.com/dsimlab/dsim/sim"
)

// A Simulation is a kernel simulation together with its recorder and
// monitor.
type Simulation struct {
	id string

	kernel       *sim.Simulation
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// GetKernel returns the kernel simulation, where components, state, and
// events live.
func (s *Simulation) GetKernel() *sim.Simulation {
	return s.kernel
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// the simulation was built without monitoring.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// Terminate terminates the simulation and flushes the recorded data.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
