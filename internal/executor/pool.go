package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrPoolBusy is returned when Run is called while a previous Run is in progress
var ErrPoolBusy = errors.New("pool is already running")

// Task is a unit of work identified by the cluster it targets
type Task struct {
	// Name identifies the cluster this task targets
	Name string

	// Run performs the work. It should return promptly once ctx is done.
	Run func(ctx context.Context) (interface{}, error)
}

// Result is the outcome of one Task
type Result struct {
	// Name is copied from the Task
	Name string

	// Data is what Run returned on success
	Data interface{}

	// Error is what Run returned, or the cancellation cause if Run never started
	Error error

	// Duration is how long Run took
	Duration time.Duration
}

// Pool runs tasks with bounded concurrency
type Pool struct {
	workers int
	logger  *slog.Logger
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// workers must be > 0, otherwise it defaults to 1.
func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Pool{
		workers: workers,
		logger:  logger,
	}
}

// WorkerCount returns the number of workers in the pool
func (p *Pool) WorkerCount() int {
	return p.workers
}

// IsRunning reports whether a Run is in progress
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Run executes tasks and returns one Result per task, in task order.
// progressFn, if not nil, is called after each task with (completed, total).
func (p *Pool) Run(ctx context.Context, tasks []Task, progressFn func(completed, total int)) ([]Result, error) {
	for i, task := range tasks {
		if task.Name == "" {
			return nil, fmt.Errorf("task %d must have a name", i)
		}
		if task.Run == nil {
			return nil, fmt.Errorf("task %q must have a run function", task.Name)
		}
	}

	if !p.running.CompareAndSwap(false, true) {
		return nil, ErrPoolBusy
	}
	defer p.running.Store(false)

	taskCount := len(tasks)
	if taskCount == 0 {
		p.logger.Debug("no tasks to execute")
		return []Result{}, nil
	}

	workerCount := p.workers
	if workerCount > taskCount {
		workerCount = taskCount
	}

	p.logger.Debug("starting task execution", "workers", workerCount, "tasks", taskCount)
	startTime := time.Now()

	taskChan := make(chan taskWithIndex, taskCount)
	resultChan := make(chan resultWithIndex, taskCount)
	var completed atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go p.worker(ctx, i, taskChan, resultChan, &wg, &completed, taskCount, progressFn)
	}

	// taskChan is buffered to taskCount, so queuing never blocks
	for i, task := range tasks {
		taskChan <- taskWithIndex{task: task, index: i}
	}
	close(taskChan)

	wg.Wait()
	close(resultChan)

	results := make([]Result, taskCount)
	done := make([]bool, taskCount)
	for res := range resultChan {
		results[res.index] = res.result
		done[res.index] = true
	}

	for i := range results {
		if !done[i] {
			results[i] = Result{
				Name:  tasks[i].Name,
				Error: fmt.Errorf("task not executed: %w", ctx.Err()),
			}
		}
	}

	summary := Summarize(results)
	p.logger.Debug("task execution completed",
		"total", summary.Total,
		"successful", summary.Successful,
		"failed", summary.Failed,
		"duration", time.Since(startTime))

	return results, nil
}

func (p *Pool) worker(
	ctx context.Context,
	workerID int,
	taskChan <-chan taskWithIndex,
	resultChan chan<- resultWithIndex,
	wg *sync.WaitGroup,
	completed *atomic.Int32,
	total int,
	progressFn func(completed, total int),
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("worker stopping due to context cancellation", "worker_id", workerID)
			return

		case item, ok := <-taskChan:
			if !ok {
				return
			}

			// resultChan has room for every task
			resultChan <- resultWithIndex{result: p.executeTask(ctx, item.task), index: item.index}

			count := completed.Add(1)
			if progressFn != nil {
				progressFn(int(count), total)
			}
		}
	}
}

func (p *Pool) executeTask(ctx context.Context, task Task) Result {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return Result{
			Name:  task.Name,
			Error: fmt.Errorf("task cancelled before execution: %w", err),
		}
	}

	data, err := task.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		p.logger.Debug("task failed", "cluster", task.Name, "error", err, "duration", duration)
	} else {
		p.logger.Debug("task succeeded", "cluster", task.Name, "duration", duration)
	}

	return Result{
		Name:     task.Name,
		Data:     data,
		Error:    err,
		Duration: duration,
	}
}

type taskWithIndex struct {
	task  Task
	index int
}

type resultWithIndex struct {
	result Result
	index  int
}
