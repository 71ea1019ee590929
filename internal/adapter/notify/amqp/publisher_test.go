package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	mu       sync.Mutex
	failures int
	calls    int
	sent     []published
	closed   bool
	// release, when set, holds every publish until it is closed.
	release chan struct{}
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failures > 0 {
		f.failures--
		return errors.New("channel closed")
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func fastPublisher(ch channel, size int) *Publisher {
	p := newPublisher(ch, "vidqueue.events", size)
	p.backoff = func() retry.Backoff {
		return retry.WithMaxRetries(3, retry.NewConstant(time.Millisecond))
	}
	p.start()
	return p
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := fastPublisher(ch, 8)
	event := domain.Event{Type: domain.EventTypeStatus, JobID: "abc", Status: domain.JobStatusDone, Attempts: 1}

	p.Publish("abc", event)
	require.NoError(t, p.Close())

	require.Len(t, ch.sent, 1)
	sent := ch.sent[0]
	assert.Equal(t, "vidqueue.events", sent.exchange)
	assert.Equal(t, "jobs.done", sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, "abc", sent.msg.MessageId)

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(sent.msg.Body, &decoded))
	assert.Equal(t, domain.JobStatusDone, decoded.Status)
	assert.Equal(t, "abc", decoded.JobID)
}

func TestPublisher_Publish_RetriesTransientFailures(t *testing.T) {
	ch := &fakeChannel{failures: 2}
	p := fastPublisher(ch, 8)

	p.Publish("abc", domain.Event{JobID: "abc", Status: domain.JobStatusError})
	require.NoError(t, p.Close())

	assert.Equal(t, 3, ch.calls)
	require.Len(t, ch.sent, 1)
	assert.Equal(t, "jobs.error", ch.sent[0].key)
}

func TestPublisher_Publish_GivesUp(t *testing.T) {
	ch := &fakeChannel{failures: 100}
	p := fastPublisher(ch, 8)

	p.Publish("abc", domain.Event{JobID: "abc", Status: domain.JobStatusProcessing})
	require.NoError(t, p.Close())

	assert.Equal(t, 4, ch.calls, "first try plus three retries")
	assert.Empty(t, ch.sent)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := fastPublisher(ch, 8)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)

	p.Publish("late", domain.Event{JobID: "late", Status: domain.JobStatusDone})
	assert.Zero(t, ch.calls)
}

func TestPublisher_Publish_DoesNotWaitOnBroker(t *testing.T) {
	ch := &fakeChannel{release: make(chan struct{})}
	p := fastPublisher(ch, 2)

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		for i := 0; i < 10; i++ {
			p.Publish("abc", domain.Event{JobID: "abc", Status: domain.JobStatusProcessing})
		}
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a stalled broker")
	}

	close(ch.release)
	require.NoError(t, p.Close())
	// One event in flight plus a full outbox; the rest are dropped.
	assert.LessOrEqual(t, len(ch.sent), 3)
	assert.NotEmpty(t, ch.sent)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "jobs.pending", RoutingKey(domain.JobStatusPending))
	assert.Equal(t, "jobs.processing", RoutingKey(domain.JobStatusProcessing))
}
