package service

import (
	"sync"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/port"
)

// EventBus delivers job events in process, per job id for SSE clients and to
// firehose subscribers for the websocket hub. Slow subscribers lose events.
type EventBus struct {
	subscribers map[string][]chan domain.Event
	firehose    []chan domain.Event
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan domain.Event),
	}
}

func (eb *EventBus) Subscribe(jobID string) chan domain.Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan domain.Event, 16)
	eb.subscribers[jobID] = append(eb.subscribers[jobID], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(jobID string, ch chan domain.Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[jobID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[jobID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[jobID]) == 0 {
		delete(eb.subscribers, jobID)
	}
}

func (eb *EventBus) SubscribeAll() chan domain.Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan domain.Event, 64)
	eb.firehose = append(eb.firehose, ch)
	return ch
}

func (eb *EventBus) UnsubscribeAll(ch chan domain.Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, sub := range eb.firehose {
		if sub == ch {
			eb.firehose = append(eb.firehose[:i], eb.firehose[i+1:]...)
			close(ch)
			return
		}
	}
}

func (eb *EventBus) Publish(jobID string, event domain.Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[jobID] {
		select {
		case ch <- event:
		default:
		}
	}
	for _, ch := range eb.firehose {
		select {
		case ch <- event:
		default:
		}
	}
}

// FanOut sends every event to each non-nil publisher in order.
type FanOut []port.EventPublisher

func NewFanOut(publishers ...port.EventPublisher) FanOut {
	var out FanOut
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (f FanOut) Publish(jobID string, event domain.Event) {
	for _, p := range f {
		p.Publish(jobID, event)
	}
}

var (
	_ port.EventPublisher = (*EventBus)(nil)
	_ port.EventPublisher = FanOut(nil)
)
