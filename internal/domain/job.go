package domain

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusDone       JobStatus = "done"
	JobStatusError      JobStatus = "error"
)

// Valid reports whether s is one of the four job states.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusDone, JobStatusError:
		return true
	}
	return false
}

// Job is the record kept for one uploaded video.
type Job struct {
	ID                  string     `json:"id"`
	OriginalName        string     `json:"original_name"`
	SourcePath          string     `json:"source_path"`
	Status              JobStatus  `json:"status"`
	DurationSeconds     float64    `json:"duration_seconds,omitempty"`
	DurationDisplay     string     `json:"duration_display,omitempty"`
	ThumbnailPath       string     `json:"thumbnail_path,omitempty"`
	ThumbnailURL        string     `json:"thumbnail_url,omitempty"`
	ErrorMessage        string     `json:"error_message,omitempty"`
	Attempts            int        `json:"attempts"`
	Terminal            bool       `json:"terminal"`
	CreatedAt           time.Time  `json:"created_at"`
	ProcessingStartedAt *time.Time `json:"processing_started_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

// ProcessedResult is what a successful processing transition produces.
type ProcessedResult struct {
	JobID           string  `json:"video_id"`
	DurationSeconds float64 `json:"duration_seconds"`
	DurationDisplay string  `json:"duration"`
	ThumbnailPath   string  `json:"thumbnail_path"`
	ThumbnailURL    string  `json:"thumbnail_url"`
}

func NewJob(originalName, sourcePath string) *Job {
	return &Job{
		ID:           uuid.NewString(),
		OriginalName: originalName,
		SourcePath:   sourcePath,
		Status:       JobStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}

// IsTerminal reports whether no further automatic transition will happen.
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusDone || (j.Status == JobStatusError && j.Terminal)
}

// CanTransitionTo encodes the job lifecycle:
//
//	pending    -> processing | error (non-retryable precondition failure)
//	processing -> processing (redelivery) | done | error
//	error      -> processing | error, only while not terminal
//	done       -> nothing
func (j *Job) CanTransitionTo(next JobStatus) bool {
	switch j.Status {
	case JobStatusPending:
		return next == JobStatusProcessing || next == JobStatusError
	case JobStatusProcessing:
		return next == JobStatusProcessing || next == JobStatusDone || next == JobStatusError
	case JobStatusError:
		return !j.Terminal && (next == JobStatusProcessing || next == JobStatusError)
	}
	return false
}

func (j *Job) transition(next JobStatus) error {
	if !j.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s (terminal=%t)", ErrInvalidTransition, j.Status, next, j.Terminal)
	}
	j.Status = next
	return nil
}

// MarkProcessing starts an attempt. The error message of a previous attempt is dropped.
func (j *Job) MarkProcessing(now time.Time) error {
	redelivery := j.Status == JobStatusProcessing
	if err := j.transition(JobStatusProcessing); err != nil {
		return err
	}
	if j.ProcessingStartedAt == nil {
		t := laterOf(now, j.CreatedAt)
		j.ProcessingStartedAt = &t
	}
	if !redelivery {
		j.Attempts++
	}
	j.ErrorMessage = ""
	return nil
}

func (j *Job) MarkDone(result ProcessedResult, now time.Time) error {
	if err := j.transition(JobStatusDone); err != nil {
		return err
	}
	j.DurationSeconds = result.DurationSeconds
	j.DurationDisplay = result.DurationDisplay
	j.ThumbnailPath = result.ThumbnailPath
	j.ThumbnailURL = result.ThumbnailURL
	j.ErrorMessage = ""
	j.Terminal = true
	j.stampCompleted(now)
	return nil
}

// MarkFailed records the last attempt's error. A terminal failure closes the record.
func (j *Job) MarkFailed(cause error, terminal bool, now time.Time) error {
	if err := j.transition(JobStatusError); err != nil {
		return err
	}
	j.DurationSeconds = 0
	j.DurationDisplay = ""
	j.ThumbnailPath = ""
	j.ThumbnailURL = ""
	j.ErrorMessage = cause.Error()
	j.Terminal = terminal
	if terminal {
		j.stampCompleted(now)
	}
	return nil
}

// Result returns the stored outcome of a done job.
func (j *Job) Result() *ProcessedResult {
	if j.Status != JobStatusDone {
		return nil
	}
	return &ProcessedResult{
		JobID:           j.ID,
		DurationSeconds: j.DurationSeconds,
		DurationDisplay: j.DurationDisplay,
		ThumbnailPath:   j.ThumbnailPath,
		ThumbnailURL:    j.ThumbnailURL,
	}
}

func (j *Job) Clone() *Job {
	c := *j
	if j.ProcessingStartedAt != nil {
		t := *j.ProcessingStartedAt
		c.ProcessingStartedAt = &t
	}
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

func (j *Job) stampCompleted(now time.Time) {
	if j.CompletedAt != nil {
		return
	}
	floor := j.CreatedAt
	if j.ProcessingStartedAt != nil {
		floor = *j.ProcessingStartedAt
	}
	t := laterOf(now, floor)
	j.CompletedAt = &t
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

// ThumbnailFilename is derived from the job id so re-runs overwrite the same file.
func ThumbnailFilename(jobID string) string {
	return jobID + "_thumbnail.jpg"
}

// UploadFilename keeps the original extension for the tool's format sniffing.
func UploadFilename(jobID, originalName string) string {
	return jobID + filepath.Ext(originalName)
}

// JobFilter narrows List results. Zero values match everything.
type JobFilter struct {
	Status        JobStatus
	TerminalOnly  bool
	CreatedBefore time.Time
	Limit         int
}

func (f JobFilter) Match(j *Job) bool {
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	if f.TerminalOnly && !j.IsTerminal() {
		return false
	}
	if !f.CreatedBefore.IsZero() && !j.CreatedAt.Before(f.CreatedBefore) {
		return false
	}
	return true
}
