package port

import (
	"context"

	"github.com/bnema/vidqueue/internal/domain"
)

type JobStore interface {
	Create(ctx context.Context, job *domain.Job) error
	// Get returns domain.ErrNotFound for unknown ids.
	Get(ctx context.Context, id string) (*domain.Job, error)
	// Update applies fn to the current record and persists the result atomically.
	// Returning an error from fn aborts the write.
	Update(ctx context.Context, id string, fn func(*domain.Job) error) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error)
}

type ThumbnailStore interface {
	// Publish makes the thumbnail at localPath reachable and returns its URL.
	Publish(ctx context.Context, jobID, localPath string) (string, error)
	Remove(ctx context.Context, jobID string) error
}
