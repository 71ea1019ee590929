package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/vidqueue/internal/adapter/storage/sqlite/sqlitedb"
	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/backoff"
	"github.com/bnema/vidqueue/internal/port"
)

// TaskQueue is a durable lease-based queue in the tasks table. Dequeue polls
// with backoff; Enqueue and Schedule in the same process wake the pollers.
// Every write after Dequeue is checked against the lease owner.
type TaskQueue struct {
	queries *sqlitedb.Queries
	poller  *backoff.Poller
	now     func() time.Time
}

func NewTaskQueue(store *Store, idle *backoff.Backoff) *TaskQueue {
	if idle == nil {
		idle = backoff.New(100*time.Millisecond, 2*time.Second, 2)
	}
	return &TaskQueue{
		queries: store.queries,
		poller:  backoff.NewPoller(idle),
		now:     time.Now,
	}
}

func (q *TaskQueue) Enqueue(ctx context.Context, task *domain.Task) error {
	now := q.now().UTC()
	err := q.queries.InsertTask(ctx, sqlitedb.InsertTaskParams{
		ID:         task.ID,
		JobID:      task.JobID,
		Retries:    int64(task.Retries),
		MaxRetries: int64(task.MaxRetries),
		NotBefore:  toMillis(now),
		LastError:  task.LastError,
		CreatedAt:  toMillis(now),
		UpdatedAt:  toMillis(now),
	})
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	q.poller.Wake()
	return nil
}

func (q *TaskQueue) Schedule(ctx context.Context, task *domain.Task, owner string, notBefore time.Time) error {
	n, err := q.queries.RescheduleTask(ctx, sqlitedb.RescheduleTaskParams{
		Retries:   int64(task.Retries),
		NotBefore: toMillis(notBefore),
		LastError: task.LastError,
		Now:       toMillis(q.now()),
		ID:        task.ID,
		Owner:     owner,
	})
	if err != nil {
		return fmt.Errorf("schedule task: %w", err)
	}
	if n == 0 {
		return domain.ErrLeaseLost
	}
	q.poller.Wake()
	return nil
}

func (q *TaskQueue) Dequeue(ctx context.Context, owner string, lease time.Duration) (*domain.Task, error) {
	for idle := 0; ; idle++ {
		task, err := q.claim(ctx, owner, lease)
		if err != nil {
			return nil, err
		}
		if task != nil {
			return task, nil
		}
		if err := q.poller.Wait(ctx, idle); err != nil {
			return nil, err
		}
	}
}

func (q *TaskQueue) claim(ctx context.Context, owner string, lease time.Duration) (*domain.Task, error) {
	now := q.now()
	row, err := q.queries.ClaimTask(ctx, sqlitedb.ClaimTaskParams{
		Owner:          owner,
		LeaseExpiresAt: toMillis(now.Add(lease)),
		Now:            toMillis(now),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("claim task: %w", err)
	}
	return taskFromRow(row)
}

func (q *TaskQueue) Extend(ctx context.Context, taskID, owner string, lease time.Duration) error {
	now := q.now()
	n, err := q.queries.ExtendLease(ctx, sqlitedb.ExtendLeaseParams{
		LeaseExpiresAt: toMillis(now.Add(lease)),
		UpdatedAt:      toMillis(now),
		ID:             taskID,
		LeaseOwner:     owner,
	})
	return ackResult(n, err)
}

func (q *TaskQueue) Complete(ctx context.Context, taskID, owner string, result *domain.ProcessedResult) error {
	var encoded string
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		encoded = string(b)
	}
	n, err := q.queries.CompleteTask(ctx, sqlitedb.CompleteTaskParams{
		Result: encoded,
		Now:    toMillis(q.now()),
		ID:     taskID,
		Owner:  owner,
	})
	return ackResult(n, err)
}

func (q *TaskQueue) Fail(ctx context.Context, taskID, owner, errMsg string) error {
	n, err := q.queries.FailTask(ctx, sqlitedb.FailTaskParams{
		LastError: errMsg,
		Now:       toMillis(q.now()),
		ID:        taskID,
		Owner:     owner,
	})
	return ackResult(n, err)
}

func (q *TaskQueue) Get(ctx context.Context, taskID string) (*domain.Task, error) {
	row, err := q.queries.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return taskFromRow(row)
}

func (q *TaskQueue) DeleteByJob(ctx context.Context, jobID string) error {
	return q.queries.DeleteTasksByJob(ctx, jobID)
}

func ackResult(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLeaseLost
	}
	return nil
}

func taskFromRow(row sqlitedb.Task) (*domain.Task, error) {
	task := &domain.Task{
		ID:         row.ID,
		JobID:      row.JobID,
		State:      domain.TaskState(row.State),
		Retries:    int(row.Retries),
		MaxRetries: int(row.MaxRetries),
		NotBefore:  fromMillis(row.NotBefore),
		LeaseOwner: row.LeaseOwner,
		Deliveries: int(row.Deliveries),
		LastError:  row.LastError,
		CreatedAt:  fromMillis(row.CreatedAt),
		UpdatedAt:  fromMillis(row.UpdatedAt),
	}
	if row.LeaseExpiresAt > 0 {
		task.LeaseExpiresAt = fromMillis(row.LeaseExpiresAt)
	}
	if row.CompletedAt.Valid {
		t := fromMillis(row.CompletedAt.Int64)
		task.CompletedAt = &t
	}
	if row.Result != "" {
		var result domain.ProcessedResult
		if err := json.Unmarshal([]byte(row.Result), &result); err != nil {
			return nil, fmt.Errorf("decode task result: %w", err)
		}
		task.Result = &result
	}
	return task, nil
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ port.TaskQueue = (*TaskQueue)(nil)
