// internal/platform/workerpool/worker_pool.go
package workerpool

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"biorules/internal/platform/logx"
)

// Task is a unit of work executed by the pool.
type Task interface {
	// Execute runs the task
	Execute(ctx context.Context) error

	// Priority returns the task priority (higher runs first)
	Priority() int

	// Weight returns the estimated cost of the task (0-100)
	Weight() int

	// Name returns the task name
	Name() string
}

// Scheduler decides the order in which tasks are dispatched.
type Scheduler interface {
	// Schedule returns the tasks in dispatch order
	Schedule(tasks []Task) []Task

	// Name returns the scheduler name
	Name() string
}

// WorkerPool runs tasks concurrently on a fixed number of workers.
type WorkerPool struct {
	workers   int
	scheduler Scheduler
	logger    logx.Logger
}

// TaskResult is the result of one task. Index is the task's position in the
// slice passed to Run.
type TaskResult struct {
	Index    int
	Task     Task
	Error    error
	Duration time.Duration
}

// WorkerPoolConfig configures the worker pool.
type WorkerPoolConfig struct {
	Workers   int
	Scheduler Scheduler
	Logger    logx.Logger
}

// queued carries a task together with its submission index through the
// scheduler.
type queued struct {
	index int
	task  Task
}

func (q *queued) Execute(ctx context.Context) error { return q.task.Execute(ctx) }
func (q *queued) Priority() int                     { return q.task.Priority() }
func (q *queued) Weight() int                       { return q.task.Weight() }
func (q *queued) Name() string                      { return q.task.Name() }

// NewWorkerPool creates a worker pool. Workers defaults to 1.
func NewWorkerPool(cfg WorkerPoolConfig) *WorkerPool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewFIFOScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	return &WorkerPool{
		workers:   cfg.Workers,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.With("component", "worker-pool"),
	}
}

// Run executes tasks and blocks until all of them finished or ctx is
// cancelled. Results are returned sorted by Index. Tasks still queued when
// ctx is cancelled are not run and have no result.
func (wp *WorkerPool) Run(ctx context.Context, tasks []Task) []TaskResult {
	if len(tasks) == 0 {
		return []TaskResult{}
	}

	wrapped := make([]Task, len(tasks))
	for i, t := range tasks {
		wrapped[i] = &queued{index: i, task: t}
	}
	scheduled := wp.scheduler.Schedule(wrapped)

	workers := wp.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}

	wp.logger.Debug("submitting tasks",
		"total", len(scheduled),
		"workers", workers,
		"scheduler", wp.scheduler.Name(),
	)

	queue := make(chan *queued)
	results := make(chan TaskResult, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go wp.worker(ctx, i, queue, results, &wg)
	}

	go func() {
		defer close(queue)
		for _, task := range scheduled {
			select {
			case queue <- task.(*queued):
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	out := make([]TaskResult, 0, len(tasks))
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	if len(out) < len(tasks) {
		wp.logger.Warn("pool stopped before all tasks ran", "completed", len(out), "total", len(tasks))
	}
	return out
}

func (wp *WorkerPool) worker(ctx context.Context, id int, queue <-chan *queued, results chan<- TaskResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case q, ok := <-queue:
			if !ok {
				return
			}
			results <- wp.executeTask(ctx, id, q)
		}
	}
}

// executeTask runs one task, turning a panic into an error.
func (wp *WorkerPool) executeTask(ctx context.Context, workerID int, q *queued) (res TaskResult) {
	start := time.Now()
	res = TaskResult{Index: q.index, Task: q.task}

	defer func() {
		if r := recover(); r != nil {
			res.Error = fmt.Errorf("task %s panicked: %v", q.task.Name(), r)
			wp.logger.Warn("task panicked", "worker_id", workerID, "task", q.task.Name(), "panic", fmt.Sprint(r))
		}
		res.Duration = time.Since(start)
	}()

	wp.logger.Debug("executing task",
		"worker_id", workerID,
		"task", q.task.Name(),
		"priority", q.task.Priority(),
		"weight", q.task.Weight(),
	)

	res.Error = q.task.Execute(ctx)

	wp.logger.Debug("task completed",
		"worker_id", workerID,
		"task", q.task.Name(),
		"duration_ms", time.Since(start).Milliseconds(),
		"error", res.Error != nil,
	)
	return res
}

// Stats returns the pool configuration.
func (wp *WorkerPool) Stats() WorkerPoolStats {
	return WorkerPoolStats{
		Workers:       wp.workers,
		SchedulerName: wp.scheduler.Name(),
	}
}

// WorkerPoolStats describes a worker pool.
type WorkerPoolStats struct {
	Workers       int
	SchedulerName string
}
