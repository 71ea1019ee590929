package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskState string

const (
	TaskStateQueued  TaskState = "queued"
	TaskStateRunning TaskState = "running"
	TaskStateDone    TaskState = "done"
	TaskStateFailed  TaskState = "failed"
)

// Task is a queue entry referencing a job. Finished tasks stay around as the
// result backend until their job is cleaned up.
type Task struct {
	ID             string
	JobID          string
	State          TaskState
	Retries        int
	MaxRetries     int
	NotBefore      time.Time
	LeaseOwner     string
	LeaseExpiresAt time.Time
	Deliveries     int
	LastError      string
	Result         *ProcessedResult
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

func NewTask(jobID string, maxRetries int) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:         uuid.NewString(),
		JobID:      jobID,
		State:      TaskStateQueued,
		MaxRetries: maxRetries,
		NotBefore:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Exhausted reports whether a failure of the current attempt is final.
func (t *Task) Exhausted() bool {
	return t.Retries >= t.MaxRetries
}

// Attempt is the 1-based number of the current attempt.
func (t *Task) Attempt() int {
	return t.Retries + 1
}

// NextRetry returns the task as it should be rescheduled after a retryable failure.
func (t *Task) NextRetry(lastError string) *Task {
	next := *t
	next.Retries++
	next.State = TaskStateQueued
	next.LeaseOwner = ""
	next.LeaseExpiresAt = time.Time{}
	next.LastError = lastError
	next.Result = nil
	return &next
}

func (s TaskState) IsTerminal() bool {
	return s == TaskStateDone || s == TaskStateFailed
}

// RetryPolicy is a fixed delay between attempts, independent of the attempt number.
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, Delay: 60 * time.Second}

func (p RetryPolicy) Backoff(int) time.Duration {
	return p.Delay
}
