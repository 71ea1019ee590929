package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
)

const (
	publishTimeout = 5 * time.Second
	outboxSize     = 256
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type outgoing struct {
	jobID string
	event domain.Event
}

// Publisher forwards job status events to a topic exchange with routing key
// jobs.<status>. Publish only queues the event; a single sender goroutine
// delivers it, retrying a few times before dropping it. When the outbox is
// full new events are dropped so callers never wait on the broker.
type Publisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	backoff  func() retry.Backoff

	mu     sync.RWMutex
	closed bool
	outbox chan outgoing
	done   chan struct{}
}

func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := newPublisher(ch, exchange, outboxSize)
	p.conn = conn
	p.start()
	return p, nil
}

// newPublisher builds a publisher without starting its sender.
func newPublisher(ch channel, exchange string, size int) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		backoff: func() retry.Backoff {
			b := retry.NewExponential(100 * time.Millisecond)
			b = retry.WithCappedDuration(time.Second, b)
			return retry.WithMaxRetries(3, b)
		},
		outbox: make(chan outgoing, size),
		done:   make(chan struct{}),
	}
}

func (p *Publisher) start() {
	go func() {
		defer close(p.done)
		for msg := range p.outbox {
			p.send(msg.jobID, msg.event)
		}
	}()
}

func RoutingKey(status domain.JobStatus) string {
	return "jobs." + string(status)
}

func (p *Publisher) Publish(jobID string, event domain.Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		logger.Warn.Printf("drop status event for job %s: publisher closed", jobID)
		return
	}
	select {
	case p.outbox <- outgoing{jobID: jobID, event: event}:
	default:
		logger.Warn.Printf("drop status event for job %s: outbox full", jobID)
	}
}

func (p *Publisher) send(jobID string, event domain.Event) {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error.Printf("encode event for job %s: %v", jobID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		err := p.channel.PublishWithContext(ctx,
			p.exchange,
			RoutingKey(event.Status),
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    jobID,
				Timestamp:    event.Time,
				Body:         body,
			},
		)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		logger.Warn.Printf("drop status event for job %s: %v", jobID, err)
	}
}

// Close stops accepting events, waits for the sender to flush the outbox and
// then closes the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.outbox)
	}
	p.mu.Unlock()
	<-p.done

	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

var _ port.EventPublisher = (*Publisher)(nil)
