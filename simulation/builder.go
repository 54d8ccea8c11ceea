package simulation

import (
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/dsimlab/dsim/datarecording"
	"github.com/dsimlab/dsim/monitoring"
	"github.com/dsimlab/dsim/sim"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	outputFileName string
	eventLoggingOn bool
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithEventLogging sets the simulation to log every dispatched event to the
// standard logger.
func (b Builder) WithEventLogging() Builder {
	b.eventLoggingOn = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		kernel: sim.NewSimulation(),
	}

	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "dsim_" + s.id
	}
	s.dataRecorder = datarecording.New(outputPath)

	s.kernel.AcceptHook(datarecording.NewEventTracer(s.dataRecorder))

	if b.eventLoggingOn {
		s.kernel.AcceptHook(sim.NewEventLogger(logrus.StandardLogger()))
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterSimulation(s.kernel)
		s.monitor.StartServer()
	}

	return s
}
