package service

import (
	"context"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/port"
)

type JobStatusView struct {
	ID              string           `json:"video_id"`
	Status          domain.JobStatus `json:"status"`
	DurationSeconds *float64         `json:"duration_seconds,omitempty"`
	DurationDisplay string           `json:"duration,omitempty"`
	ThumbnailURL    string           `json:"thumbnail_url,omitempty"`
	ErrorMessage    string           `json:"error_message,omitempty"`
	Attempts        int              `json:"attempts"`
	Terminal        bool             `json:"terminal"`
}

// Task states as reported to clients.
const (
	TaskViewPending = "pending"
	TaskViewRunning = "running"
	TaskViewDone    = "done"
	TaskViewError   = "error"
)

type TaskStatusView struct {
	TaskID  string                  `json:"task_id"`
	JobID   string                  `json:"video_id"`
	State   string                  `json:"state"`
	Result  *domain.ProcessedResult `json:"result,omitempty"`
	Error   string                  `json:"error,omitempty"`
	Retries int                     `json:"retries"`
}

// StatusService answers read-only status queries. It never blocks on a worker.
type StatusService struct {
	store port.JobStore
	queue port.TaskQueue
}

func NewStatusService(store port.JobStore, queue port.TaskQueue) *StatusService {
	return &StatusService{store: store, queue: queue}
}

func (s *StatusService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.store.Get(ctx, id)
}

func (s *StatusService) ListJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	return s.store.List(ctx, filter)
}

func (s *StatusService) GetJobStatus(ctx context.Context, id string) (*JobStatusView, error) {
	job, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewJobStatusView(job), nil
}

func (s *StatusService) GetTaskStatus(ctx context.Context, taskID string) (*TaskStatusView, error) {
	task, err := s.queue.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	view := &TaskStatusView{
		TaskID:  task.ID,
		JobID:   task.JobID,
		Retries: task.Retries,
	}
	switch task.State {
	case domain.TaskStateRunning:
		view.State = TaskViewRunning
	case domain.TaskStateDone:
		view.State = TaskViewDone
		view.Result = task.Result
	case domain.TaskStateFailed:
		view.State = TaskViewError
		view.Error = task.LastError
	default:
		view.State = TaskViewPending
	}
	return view, nil
}

func NewJobStatusView(job *domain.Job) *JobStatusView {
	view := &JobStatusView{
		ID:           job.ID,
		Status:       job.Status,
		ErrorMessage: job.ErrorMessage,
		Attempts:     job.Attempts,
		Terminal:     job.IsTerminal(),
	}
	if job.Status == domain.JobStatusDone {
		d := job.DurationSeconds
		view.DurationSeconds = &d
		view.DurationDisplay = job.DurationDisplay
		view.ThumbnailURL = job.ThumbnailURL
	}
	return view
}
