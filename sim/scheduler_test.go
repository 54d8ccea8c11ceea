package sim

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type eventA struct {
	n int
}

type eventB struct {
	label string
}

var _ = Describe("Scheduler", func() {
	var (
		scheduler  *Scheduler
		componentA ComponentID[eventA]
		componentB ComponentID[eventB]
	)

	BeforeEach(func() {
		scheduler = NewScheduler()
		componentA = ComponentID[eventA]{id: 1}
		componentB = ComponentID[eventB]{id: 2}
	})

	It("should start empty with the clock at zero", func() {
		Expect(scheduler.Len()).To(Equal(0))
		Expect(scheduler.Time()).To(Equal(time.Duration(0)))
		Expect(scheduler.Clock().Time()).To(Equal(time.Duration(0)))
		Expect(scheduler.Pop()).To(BeNil())
		Expect(scheduler.Peek()).To(BeNil())
	})

	It("should pop entries in time order and advance the clock", func() {
		Schedule(scheduler, 1*time.Second, componentA, eventA{n: 1})
		ScheduleNow(scheduler, componentB, eventB{label: "b"})
		Schedule(scheduler, 2*time.Second, componentB, eventB{label: "late"})

		Expect(scheduler.Time()).To(Equal(time.Duration(0)))

		entry := scheduler.Pop()
		Expect(entry.Time()).To(Equal(time.Duration(0)))
		Expect(entry.ComponentIndex()).To(Equal(uint64(2)))
		Expect(entry.Event()).To(Equal(eventB{label: "b"}))
		Expect(scheduler.Time()).To(Equal(time.Duration(0)))

		entry = scheduler.Pop()
		Expect(entry.Time()).To(Equal(1 * time.Second))
		Expect(entry.Event()).To(Equal(eventA{n: 1}))
		Expect(scheduler.Time()).To(Equal(1 * time.Second))

		entry = scheduler.Pop()
		Expect(entry.Time()).To(Equal(2 * time.Second))
		Expect(entry.Event()).To(Equal(eventB{label: "late"}))
		Expect(scheduler.Time()).To(Equal(2 * time.Second))

		Expect(scheduler.Pop()).To(BeNil())
	})

	It("should dispatch same-time entries in schedule order", func() {
		for i := 0; i < 100; i++ {
			Schedule(scheduler, 3*time.Second, componentA, eventA{n: i})
		}

		for i := 0; i < 100; i++ {
			entry := scheduler.Pop()
			Expect(entry.Event()).To(Equal(eventA{n: i}))
		}
	})

	It("should never move the clock backwards", func() {
		Schedule(scheduler, 5*time.Second, componentA, eventA{})
		Schedule(scheduler, 1*time.Second, componentA, eventA{})
		Schedule(scheduler, 3*time.Second, componentA, eventA{})

		prev := scheduler.Time()
		for entry := scheduler.Pop(); entry != nil; entry = scheduler.Pop() {
			Expect(scheduler.Time()).To(Equal(entry.Time()))
			Expect(scheduler.Time() >= prev).To(BeTrue())
			prev = scheduler.Time()
		}
	})

	It("should schedule relative to the current time", func() {
		Schedule(scheduler, 2*time.Second, componentA, eventA{n: 1})
		scheduler.Pop()

		Schedule(scheduler, 2*time.Second, componentA, eventA{n: 2})
		entry := scheduler.Pop()
		Expect(entry.Time()).To(Equal(4 * time.Second))
	})

	It("should peek without advancing the clock", func() {
		Schedule(scheduler, 1*time.Second, componentA, eventA{n: 7})

		entry := scheduler.Peek()
		Expect(entry.Event()).To(Equal(eventA{n: 7}))
		Expect(scheduler.Time()).To(Equal(time.Duration(0)))
		Expect(scheduler.Len()).To(Equal(1))
	})

	It("should panic on a negative delay", func() {
		Expect(func() {
			Schedule(scheduler, -1*time.Second, componentA, eventA{})
		}).To(Panic())
	})

	It("should share the clock through ClockRef", func() {
		clock := scheduler.Clock()
		Expect(clock.Time()).To(Equal(time.Duration(0)))

		Schedule(scheduler, 90*time.Millisecond, componentA, eventA{})
		scheduler.Pop()

		Expect(clock.Time()).To(Equal(90 * time.Millisecond))
		Expect(clock.Time()).To(Equal(scheduler.Time()))
	})

	It("should give every entry a unique ID", func() {
		Schedule(scheduler, 0, componentA, eventA{})
		Schedule(scheduler, 0, componentA, eventA{})

		first := scheduler.Pop()
		second := scheduler.Pop()
		Expect(first.ID).NotTo(BeEmpty())
		Expect(first.ID).NotTo(Equal(second.ID))
	})
})
