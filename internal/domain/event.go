package domain

import "time"

// Event is a job status change as seen by subscribers.
type Event struct {
	Type     string    `json:"type"`
	JobID    string    `json:"video_id"`
	Status   JobStatus `json:"status"`
	Message  string    `json:"message,omitempty"`
	Attempts int       `json:"attempts"`
	Time     time.Time `json:"time"`
}

const EventTypeStatus = "status"

func NewStatusEvent(job *Job) Event {
	return Event{
		Type:     EventTypeStatus,
		JobID:    job.ID,
		Status:   job.Status,
		Message:  job.ErrorMessage,
		Attempts: job.Attempts,
		Time:     time.Now().UTC(),
	}
}
