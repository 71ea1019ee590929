package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
)

type Submission struct {
	Job  *domain.Job
	Task *domain.Task
}

// SubmissionService stores uploads and hands them to the queue. The record is
// always persisted before its task becomes visible to workers.
type SubmissionService struct {
	store      port.JobStore
	queue      port.TaskQueue
	events     port.EventPublisher
	uploadDir  string
	maxRetries int
}

func NewSubmissionService(store port.JobStore, queue port.TaskQueue, events port.EventPublisher, uploadDir string, maxRetries int) *SubmissionService {
	return &SubmissionService{
		store:      store,
		queue:      queue,
		events:     events,
		uploadDir:  uploadDir,
		maxRetries: maxRetries,
	}
}

func (s *SubmissionService) Upload(ctx context.Context, originalName string, src io.Reader) (*Submission, error) {
	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		logger.Error.Printf("failed to create upload directory: %v", err)
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	job := domain.NewJob(originalName, "")
	job.SourcePath = filepath.Join(s.uploadDir, domain.UploadFilename(job.ID, originalName))

	if err := writeUpload(job.SourcePath, src); err != nil {
		logger.Error.Printf("failed to save upload %s: %v", logger.SanitizeForLog(originalName), err)
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	if err := s.store.Create(ctx, job); err != nil {
		_ = os.Remove(job.SourcePath)
		logger.Error.Printf("failed to save job %s: %v", job.ID, err)
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	task, err := s.Submit(ctx, job.ID)
	if err != nil {
		s.abandon(ctx, job.ID, err)
		return nil, err
	}

	logger.Info.Printf("video uploaded: id=%s, task=%s, filename=%s", job.ID, task.ID, logger.SanitizeForLog(originalName))
	return &Submission{Job: job, Task: task}, nil
}

// Submit enqueues processing for an existing record.
func (s *SubmissionService) Submit(ctx context.Context, jobID string) (*domain.Task, error) {
	job, err := s.store.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(job.ID, s.maxRetries)
	if err := s.queue.Enqueue(ctx, task); err != nil {
		logger.Error.Printf("failed to enqueue job %s: %v", job.ID, err)
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	if s.events != nil {
		s.events.Publish(job.ID, domain.NewStatusEvent(job))
	}
	return task, nil
}

// abandon closes a record whose task never reached the queue so retention can reclaim it.
func (s *SubmissionService) abandon(ctx context.Context, jobID string, cause error) {
	_, err := s.store.Update(ctx, jobID, func(j *domain.Job) error {
		return j.MarkFailed(cause, true, time.Now().UTC())
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Error.Printf("failed to close abandoned job %s: %v", jobID, err)
	}
}

func writeUpload(path string, src io.Reader) error {
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
