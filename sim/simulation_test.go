package sim

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/dsimlab/dsim/sim/hooking"
	"github.com/dsimlab/dsim/sim/hooking/mock_hooking"
)

// atPos matches a HookCtx triggered at the given position.
type atPos struct {
	pos *hooking.HookPos
}

func (m atPos) Matches(x any) bool {
	ctx, ok := x.(hooking.HookCtx)
	return ok && ctx.Pos == m.pos
}

func (m atPos) String() string {
	return fmt.Sprintf("hook ctx at %s", m.pos.Name)
}

var _ = Describe("Simulation", func() {
	var (
		mockCtrl   *gomock.Controller
		simulation *Simulation
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		simulation = NewSimulation()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should report the end of the simulation", func() {
		Expect(simulation.Step()).To(BeFalse())
	})

	It("should step through scheduled events", func() {
		log := Insert(simulation.State, []string{})
		component := RegisterComponent[string](
			simulation, &recordingComponent{received: log})

		Schedule(simulation.Scheduler, time.Second, component, "one")
		Schedule(simulation.Scheduler, 2*time.Second, component, "two")

		Expect(simulation.Step()).To(BeTrue())
		Expect(simulation.Scheduler.Time()).To(Equal(time.Second))
		Expect(*Get(simulation.State, log)).To(Equal([]string{"one"}))

		Expect(simulation.Step()).To(BeTrue())
		Expect(simulation.Step()).To(BeFalse())
		Expect(*Get(simulation.State, log)).To(Equal([]string{"one", "two"}))
	})

	It("should run until the scheduler is empty", func() {
		echoed := Insert(simulation.State, 0)
		component := RegisterComponent[echoEvent](
			simulation, &echoComponent{echoed: echoed})
		ScheduleNow(simulation.Scheduler, component, echoEvent{})

		simulation.Run()

		Expect(*Get(simulation.State, echoed)).To(Equal(1))
		Expect(simulation.Scheduler.Len()).To(Equal(0))
	})

	It("should invoke hooks around each dispatch", func() {
		hook := mock_hooking.NewMockHook(mockCtrl)
		simulation.AcceptHook(hook)

		log := Insert(simulation.State, []string{})
		component := RegisterComponent[string](
			simulation, &recordingComponent{received: log})
		ScheduleNow(simulation.Scheduler, component, "observed")

		gomock.InOrder(
			hook.EXPECT().Func(atPos{pos: HookPosBeforeEvent}),
			hook.EXPECT().Func(atPos{pos: HookPosAfterEvent}),
		)

		Expect(simulation.Step()).To(BeTrue())

		// The empty terminating step does not touch the hooks.
		Expect(simulation.Step()).To(BeFalse())
	})

	It("should install queues through the façade", func() {
		unbounded := NewQueue[int](simulation)
		bounded := NewBoundedQueue[int](simulation, 1)

		Expect(Send(simulation.State, unbounded, 1)).To(Succeed())
		Expect(Send(simulation.State, bounded, 1)).To(Succeed())
		Expect(Send(simulation.State, bounded, 2)).NotTo(Succeed())
	})
})
