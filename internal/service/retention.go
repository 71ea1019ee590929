package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
)

// RetentionService removes finished jobs once they are older than the
// retention window. Jobs still in flight are never touched.
type RetentionService struct {
	store      port.JobStore
	queue      port.TaskQueue
	thumbnails port.ThumbnailStore
	retention  time.Duration
	now        func() time.Time
}

func NewRetentionService(store port.JobStore, queue port.TaskQueue, thumbnails port.ThumbnailStore, retentionDays int) *RetentionService {
	return &RetentionService{
		store:      store,
		queue:      queue,
		thumbnails: thumbnails,
		retention:  time.Duration(retentionDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// Cleanup returns how many jobs were removed. A job that fails to clean up is
// logged and left for the next run.
func (s *RetentionService) Cleanup(ctx context.Context) (int, error) {
	expired, err := s.store.List(ctx, domain.JobFilter{
		TerminalOnly:  true,
		CreatedBefore: s.now().UTC().Add(-s.retention),
	})
	if err != nil {
		return 0, fmt.Errorf("list expired jobs: %w", err)
	}

	removed := 0
	for _, job := range expired {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if err := s.remove(ctx, job); err != nil {
			logger.Error.Printf("cleanup of job %s failed: %v", job.ID, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Info.Printf("cleanup removed %d expired jobs", removed)
	}
	return removed, nil
}

func (s *RetentionService) remove(ctx context.Context, job *domain.Job) error {
	if job.SourcePath != "" {
		if err := os.Remove(job.SourcePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove source: %w", err)
		}
	}
	if err := s.thumbnails.Remove(ctx, job.ID); err != nil {
		return fmt.Errorf("remove thumbnail: %w", err)
	}
	if err := s.queue.DeleteByJob(ctx, job.ID); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	if err := s.store.Delete(ctx, job.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Run cleans up immediately and then on every interval until ctx is done.
func (s *RetentionService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		logger.Error.Printf("cleanup disabled: non-positive interval %s", interval)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Cleanup(ctx); err != nil && ctx.Err() == nil {
			logger.Error.Printf("cleanup failed: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
