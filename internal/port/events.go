package port

import "github.com/bnema/vidqueue/internal/domain"

type EventPublisher interface {
	Publish(jobID string, event domain.Event)
}
