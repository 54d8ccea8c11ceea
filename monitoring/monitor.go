// Package monitoring turns a running simulation into a small HTTP server so
// that its progress can be observed from outside the process. The monitor
// only reads; it never mutates the simulation.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	// Enable profiling.
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"

	"github.com/dsimlab/dsim/sim"
)

// portEnvVar can be set, directly or through a .env file, to pick the
// monitor port without code changes.
const portEnvVar = "DSIM_MONITOR_PORT"

// noBrowserEnvVar suppresses opening the dashboard in a browser when set.
const noBrowserEnvVar = "DSIM_MONITOR_NO_BROWSER"

// Monitor makes a simulation observable over HTTP.
type Monitor struct {
	simulation *sim.Simulation
	portNumber int

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port the server listens on. Ports below 1000 are
// rejected and replaced with a random free port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server, "+
				"using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterSimulation registers the simulation to be monitored.
func (m *Monitor) RegisterSimulation(s *sim.Simulation) {
	m.simulation = s
}

// CreateProgressBar creates a new progress bar shown by the monitor.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := NewProgressBar(name, total)

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a finished bar from the monitor.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			bars = append(bars, b)
		}
	}
	m.progressBars = bars
}

// StartServer starts the monitoring server. The listening port is taken
// from WithPortNumber, the DSIM_MONITOR_PORT environment variable, or a
// .env file, in that order; without any of them a random free port is
// used. The chosen address is logged.
func (m *Monitor) StartServer() {
	port := m.resolvePort()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		panic(err)
	}

	addr := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	logrus.WithField("addr", addr).Info("monitoring server started")

	if os.Getenv(noBrowserEnvVar) == "" {
		_ = browser.OpenURL(addr + "/api/status")
	}

	go func() {
		if err := http.Serve(listener, m.router()); err != nil {
			logrus.WithError(err).Error("monitoring server stopped")
		}
	}()
}

func (m *Monitor) resolvePort() int {
	if m.portNumber != 0 {
		return m.portNumber
	}

	// A missing .env file is fine; the variable may still be set directly.
	_ = godotenv.Load()

	if fromEnv := os.Getenv(portEnvVar); fromEnv != "" {
		port, err := strconv.Atoi(fromEnv)
		if err != nil {
			panic(fmt.Errorf("invalid %s value %q: %w",
				portEnvVar, fromEnv, err))
		}
		return port
	}

	return 0
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/status", m.handleStatus)
	r.HandleFunc("/api/progress", m.handleProgress)
	r.HandleFunc("/api/resource", m.handleResource)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	return r
}

type statusResponse struct {
	TimeNS        int64 `json:"time_ns"`
	PendingEvents int   `json:"pending_events"`
	Components    int   `json:"components"`
	Values        int   `json:"values"`
	Queues        int   `json:"queues"`
}

func (m *Monitor) handleStatus(w http.ResponseWriter, _ *http.Request) {
	rsp := statusResponse{
		TimeNS:        m.simulation.Scheduler.Time().Nanoseconds(),
		PendingEvents: m.simulation.Scheduler.Len(),
		Components:    m.simulation.Components.Len(),
		Values:        m.simulation.State.NumValues(),
		Queues:        m.simulation.State.NumQueues(),
	}

	writeJSON(w, rsp)
}

func (m *Monitor) handleProgress(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bars := make([]*ProgressBar, len(m.progressBars))
	copy(bars, m.progressBars)
	m.progressBarsLock.Unlock()

	writeJSON(w, bars)
}

type resourceResponse struct {
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
}

func (m *Monitor) handleResource(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rsp := resourceResponse{}
	if memInfo, err := proc.MemoryInfo(); err == nil {
		rsp.RSSBytes = memInfo.RSS
	}
	if cpu, err := proc.CPUPercent(); err == nil {
		rsp.CPUPercent = cpu
	}

	writeJSON(w, rsp)
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
