package simulation

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dsimlab/dsim/sim"
)

type tick struct{}

type ticker struct {
	counter sim.Key[int]
}

func (t *ticker) ProcessEvent(
	selfID sim.ComponentID[tick],
	_ tick,
	scheduler *sim.Scheduler,
	state *sim.State,
) {
	counter := sim.Get(state, t.counter)
	*counter++
	if *counter < 3 {
		sim.Schedule(scheduler, time.Second, selfID, tick{})
	}
}

var _ = Describe("Simulation", func() {
	var simulation *Simulation

	BeforeEach(func() {
		simulation = MakeBuilder().WithoutMonitoring().Build()
	})

	AfterEach(func() {
		simulation.Terminate()

		os.Remove("dsim_" + simulation.ID() + ".sqlite3")
	})

	It("should carry a kernel simulation", func() {
		Expect(simulation.GetKernel()).NotTo(BeNil())
		Expect(simulation.GetMonitor()).To(BeNil())
	})

	It("should prepare the event trace table", func() {
		Expect(simulation.GetDataRecorder().ListTables()).
			To(ContainElement("event_trace"))
	})

	It("should run components end to end", func() {
		kernel := simulation.GetKernel()

		counter := sim.Insert(kernel.State, 0)
		component := sim.RegisterComponent[tick](
			kernel, &ticker{counter: counter})
		sim.ScheduleNow(kernel.Scheduler, component, tick{})

		kernel.Run()

		Expect(*sim.Get(kernel.State, counter)).To(Equal(3))
		Expect(kernel.Scheduler.Time()).To(Equal(2 * time.Second))
	})

	Context("Builder with custom output file", func() {
		var customSim *Simulation

		AfterEach(func() {
			customSim.Terminate()
		})

		It("should write to the given path", func() {
			path := filepath.Join(GinkgoT().TempDir(), "trace")

			customSim = MakeBuilder().
				WithoutMonitoring().
				WithOutputFileName(path).
				Build()

			_, err := os.Stat(path + ".sqlite3")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("Builder parameter validation", func() {
		It("should reject a monitor port without monitoring", func() {
			Expect(func() {
				MakeBuilder().
					WithoutMonitoring().
					WithMonitorPort(8080).
					Build()
			}).To(Panic())
		})
	})
})
