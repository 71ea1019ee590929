package port

import (
	"context"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
)

// TaskQueue is a durable lease-based queue. Delivery is at-least-once: a task
// whose lease expires becomes eligible for dequeue again.
type TaskQueue interface {
	Enqueue(ctx context.Context, task *domain.Task) error
	// Schedule hands a task leased by owner back to the queue, not to be
	// delivered before notBefore. It fails with domain.ErrLeaseLost when owner
	// no longer holds the lease.
	Schedule(ctx context.Context, task *domain.Task, owner string, notBefore time.Time) error
	// Dequeue blocks until a task is eligible or ctx is done, then leases it to owner.
	Dequeue(ctx context.Context, owner string, lease time.Duration) (*domain.Task, error)
	Extend(ctx context.Context, taskID, owner string, lease time.Duration) error
	Complete(ctx context.Context, taskID, owner string, result *domain.ProcessedResult) error
	Fail(ctx context.Context, taskID, owner, errMsg string) error
	Get(ctx context.Context, taskID string) (*domain.Task, error)
	DeleteByJob(ctx context.Context, jobID string) error
}
