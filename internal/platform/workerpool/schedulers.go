// internal/platform/workerpool/schedulers.go
package workerpool

// FIFOScheduler dispatches tasks in submission order.
type FIFOScheduler struct{}

// NewFIFOScheduler creates a submission-order scheduler.
func NewFIFOScheduler() *FIFOScheduler {
	return &FIFOScheduler{}
}

// Schedule returns a copy of tasks in the same order.
func (s *FIFOScheduler) Schedule(tasks []Task) []Task {
	scheduled := make([]Task, len(tasks))
	copy(scheduled, tasks)
	return scheduled
}

// Name returns the scheduler name.
func (s *FIFOScheduler) Name() string {
	return "fifo"
}
