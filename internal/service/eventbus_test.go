package service

import (
	"testing"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/port/mocks"
	"github.com/stretchr/testify/assert"
)

func TestEventBus_PublishToJobSubscribers(t *testing.T) {
	bus := NewEventBus()
	a := bus.Subscribe("job-a")
	b := bus.Subscribe("job-b")
	defer bus.Unsubscribe("job-a", a)
	defer bus.Unsubscribe("job-b", b)

	bus.Publish("job-a", domain.Event{JobID: "job-a", Status: domain.JobStatusDone})

	select {
	case ev := <-a:
		assert.Equal(t, domain.JobStatusDone, ev.Status)
	default:
		t.Fatal("subscriber of job-a got nothing")
	}
	assert.Empty(t, b, "other jobs are not notified")
}

func TestEventBus_Firehose(t *testing.T) {
	bus := NewEventBus()
	all := bus.SubscribeAll()

	bus.Publish("job-a", domain.Event{JobID: "job-a"})
	bus.Publish("job-b", domain.Event{JobID: "job-b"})

	assert.Equal(t, "job-a", (<-all).JobID)
	assert.Equal(t, "job-b", (<-all).JobID)

	bus.UnsubscribeAll(all)
	_, open := <-all
	assert.False(t, open)
}

func TestEventBus_SlowSubscriberDropsEvents(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe("job-a")

	for i := 0; i < 100; i++ {
		bus.Publish("job-a", domain.Event{JobID: "job-a"})
	}

	assert.Len(t, ch, 16)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe("job-a")

	bus.Unsubscribe("job-a", ch)

	_, open := <-ch
	assert.False(t, open)
	assert.NotContains(t, bus.subscribers, "job-a")
	bus.Publish("job-a", domain.Event{}) // no panic on closed channel
}

func TestFanOut(t *testing.T) {
	first := mocks.NewEventPublisherMock(t)
	second := mocks.NewEventPublisherMock(t)
	ev := domain.Event{JobID: "x", Status: domain.JobStatusPending}

	first.EXPECT().Publish("x", ev).Return().Once()
	second.EXPECT().Publish("x", ev).Return().Once()

	fan := NewFanOut(first, nil, second)
	assert.Len(t, fan, 2)
	fan.Publish("x", ev)
}
