package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
)

// Processor runs the processing transition for one delivered task. It never
// touches the queue; the returned outcome tells the worker pool what to do.
type Processor struct {
	store      port.JobStore
	inspector  port.MediaInspector
	extractor  port.FrameExtractor
	thumbnails port.ThumbnailStore
	events     port.EventPublisher
	thumbDir   string
	policy     domain.RetryPolicy
	now        func() time.Time
}

func NewProcessor(
	store port.JobStore,
	inspector port.MediaInspector,
	extractor port.FrameExtractor,
	thumbnails port.ThumbnailStore,
	events port.EventPublisher,
	thumbDir string,
	policy domain.RetryPolicy,
) *Processor {
	return &Processor{
		store:      store,
		inspector:  inspector,
		extractor:  extractor,
		thumbnails: thumbnails,
		events:     events,
		thumbDir:   thumbDir,
		policy:     policy,
		now:        time.Now,
	}
}

func (p *Processor) Process(ctx context.Context, task *domain.Task) domain.Outcome {
	job, err := p.store.Get(ctx, task.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fatal(fmt.Errorf("%w: %s", domain.ErrRecordNotFound, task.JobID))
		}
		return p.retryOrGiveUp(task, fmt.Errorf("load job: %w", err))
	}

	switch {
	case job.Status == domain.JobStatusDone:
		logger.Info.Printf("job %s already done, acknowledging redelivered task %s", job.ID, task.ID)
		return domain.Ok(job.Result())
	case job.IsTerminal():
		return domain.Fatal(fmt.Errorf("job %s already failed: %s", job.ID, job.ErrorMessage))
	}

	if _, err := os.Stat(job.SourcePath); err != nil {
		cause := fmt.Errorf("%w: %s", domain.ErrSourceFileMissing, job.SourcePath)
		if os.IsNotExist(err) {
			p.markFailed(ctx, job.ID, cause, true)
			return domain.Fatal(cause)
		}
		return p.fail(ctx, task, fmt.Errorf("stat source: %w", err))
	}

	job, err = p.store.Update(ctx, job.ID, func(j *domain.Job) error {
		return j.MarkProcessing(p.now().UTC())
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return domain.Fatal(err)
		}
		return p.retryOrGiveUp(task, fmt.Errorf("mark processing: %w", err))
	}
	p.publish(job)
	logger.Info.Printf("job %s: attempt %d/%d (task %s)", job.ID, task.Attempt(), task.MaxRetries+1, task.ID)

	duration, err := p.inspector.Probe(ctx, job.SourcePath)
	if err != nil {
		return p.fail(ctx, task, err)
	}
	if duration <= 0 {
		return p.fail(ctx, task, fmt.Errorf("%w: no positive duration", domain.ErrMediaUnreadable))
	}

	timestamp := domain.ThumbnailTimestamp(duration)
	thumbPath := filepath.Join(p.thumbDir, domain.ThumbnailFilename(job.ID))
	if err := os.MkdirAll(p.thumbDir, 0755); err != nil {
		return p.fail(ctx, task, fmt.Errorf("%w: create thumbnail directory: %v", domain.ErrFrameExtractionFailed, err))
	}
	if err := p.extractor.ExtractFrame(ctx, job.SourcePath, timestamp, thumbPath); err != nil {
		return p.fail(ctx, task, err)
	}

	url, err := p.thumbnails.Publish(ctx, job.ID, thumbPath)
	if err != nil {
		return p.fail(ctx, task, fmt.Errorf("publish thumbnail: %w", err))
	}

	result := domain.ProcessedResult{
		JobID:           job.ID,
		DurationSeconds: duration,
		DurationDisplay: domain.FormatDuration(duration),
		ThumbnailPath:   thumbPath,
		ThumbnailURL:    url,
	}
	job, err = p.store.Update(ctx, job.ID, func(j *domain.Job) error {
		return j.MarkDone(result, p.now().UTC())
	})
	if err != nil {
		return p.retryOrGiveUp(task, fmt.Errorf("mark done: %w", err))
	}
	p.publish(job)

	logger.Info.Printf("job %s done: duration=%s thumbnail=%s", job.ID, result.DurationDisplay, url)
	return domain.Ok(&result)
}

// fail records the attempt's error on the job, then decides between retry and give-up.
func (p *Processor) fail(ctx context.Context, task *domain.Task, cause error) domain.Outcome {
	terminal := task.Exhausted()
	p.markFailed(ctx, task.JobID, cause, terminal)
	return p.retryOrGiveUp(task, cause)
}

func (p *Processor) retryOrGiveUp(task *domain.Task, cause error) domain.Outcome {
	if task.Exhausted() {
		logger.Error.Printf("job %s failed after %d attempts: %v", task.JobID, task.Attempt(), cause)
		return domain.Fatal(fmt.Errorf("%w after %d attempts: %w", domain.ErrRetriesExhausted, task.Attempt(), cause))
	}
	delay := p.policy.Backoff(task.Retries)
	logger.Warn.Printf("job %s attempt %d failed, retrying in %s: %v", task.JobID, task.Attempt(), delay, cause)
	return domain.Retry(cause, delay)
}

func (p *Processor) markFailed(ctx context.Context, jobID string, cause error, terminal bool) {
	job, err := p.store.Update(ctx, jobID, func(j *domain.Job) error {
		return j.MarkFailed(cause, terminal, p.now().UTC())
	})
	if err != nil {
		logger.Error.Printf("failed to record error on job %s: %v", jobID, err)
		return
	}
	p.publish(job)
}

func (p *Processor) publish(job *domain.Job) {
	if p.events != nil {
		p.events.Publish(job.ID, domain.NewStatusEvent(job))
	}
}
