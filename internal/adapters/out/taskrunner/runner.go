// Package taskrunner provides an in-process implementation of the task
// scheduler port. Chains are queued and executed sequentially on a single
// worker goroutine, so two chains for the same shift never interleave.
package taskrunner

import (
	"context"
	"log/slog"
	"sync"

	"shopfloor/internal/core/ports"
)

// InProcessRunner executes task chains on a background goroutine.
// Chain order is preserved: chains run one at a time in submission order,
// and within a chain execution stops at the first failing task.
type InProcessRunner struct {
	logger *slog.Logger

	queue chan []ports.Task

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

// NewInProcessRunner creates a runner with the given queue capacity.
// Submission blocks once the queue is full.
func NewInProcessRunner(queueSize int, logger *slog.Logger) *InProcessRunner {
	return &InProcessRunner{
		logger:  logger.With("component", "task_runner"),
		queue:   make(chan []ports.Task, queueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start launches the worker goroutine. Safe to call once; subsequent calls
// are no-ops.
func (r *InProcessRunner) Start() {
	r.startOnce.Do(func() {
		go r.run()
		r.logger.InfoContext(context.Background(), "Task runner started")
	})
}

// Stop closes the queue and waits for the worker to drain queued chains.
func (r *InProcessRunner) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		<-r.stopped
		r.logger.InfoContext(context.Background(), "Task runner stopped")
	})
}

// Chain enqueues tasks for sequential execution.
// Returns the context error if the caller's context ends while the queue is full,
// or if the runner has been stopped.
func (r *InProcessRunner) Chain(ctx context.Context, tasks ...ports.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	select {
	case r.queue <- tasks:
		return nil
	case <-r.done:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *InProcessRunner) run() {
	defer close(r.stopped)

	for {
		select {
		case tasks := <-r.queue:
			r.runChain(tasks)
		case <-r.done:
			// Drain what was accepted before shutdown.
			for {
				select {
				case tasks := <-r.queue:
					r.runChain(tasks)
				default:
					return
				}
			}
		}
	}
}

func (r *InProcessRunner) runChain(tasks []ports.Task) {
	ctx := context.Background()

	for _, task := range tasks {
		if err := task.Run(ctx); err != nil {
			r.logger.ErrorContext(ctx, "Task chain halted", "task", task.Name, "error", err)
			return
		}
		r.logger.DebugContext(ctx, "Task completed", "task", task.Name)
	}
}
