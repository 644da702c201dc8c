package ports

import (
	"context"
)

// Task is a named unit of background work. Tasks must be idempotent:
// the scheduler may run a task again after a failed or repeated chain.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// TaskScheduler runs background task chains outside the request path.
type TaskScheduler interface {
	// Chain enqueues tasks for sequential execution in the given order.
	// Execution stops at the first task that returns an error.
	// Chain returns once the tasks are accepted, not once they complete.
	Chain(ctx context.Context, tasks ...Task) error
}
