package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/backoff"
	"github.com/bnema/vidqueue/internal/port/mocks"
	"github.com/bnema/vidqueue/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pipelineRetryDelay = 60 * time.Second

type pipeline struct {
	store *Store
	queue *TaskQueue
	clock *fakeClock
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	store := newTestStore(t)
	clock := &fakeClock{now: time.Now().UTC().Truncate(time.Millisecond)}
	q := NewTaskQueue(store, &backoff.Backoff{Min: 5 * time.Millisecond, Max: 20 * time.Millisecond, Factor: 2})
	q.now = clock.Now
	return &pipeline{store: store, queue: q, clock: clock}
}

// submit stores a pending job for a real source file and enqueues its task.
func (p *pipeline) submit(t *testing.T) (*domain.Job, *domain.Task) {
	t.Helper()
	src := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("not really a video"), 0644))

	ctx := context.Background()
	job := domain.NewJob("clip.mp4", src)
	require.NoError(t, p.store.Create(ctx, job))
	task := domain.NewTask(job.ID, 3)
	require.NoError(t, p.queue.Enqueue(ctx, task))
	return job, task
}

// run starts a single-worker pool and stops it when the test ends.
func (p *pipeline) run(t *testing.T, processor *service.Processor) {
	t.Helper()
	pool := service.NewWorkerPool(p.queue, processor, 1, 5*time.Minute)
	pool.SetClock(p.clock.Now)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = pool.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func (p *pipeline) task(t *testing.T, id string) *domain.Task {
	t.Helper()
	task, err := p.queue.Get(context.Background(), id)
	require.NoError(t, err)
	return task
}

func TestPipeline_AlwaysFailingJobIsDeliveredFourTimes(t *testing.T) {
	p := newPipeline(t)
	job, task := p.submit(t)

	inspector := mocks.NewMediaInspectorMock(t)
	inspector.EXPECT().Probe(mock.Anything, job.SourcePath).Return(0, domain.ErrMediaUnreadable).Times(4)
	processor := service.NewProcessor(p.store, inspector, mocks.NewFrameExtractorMock(t), mocks.NewThumbnailStoreMock(t),
		nil, t.TempDir(), domain.RetryPolicy{MaxRetries: 3, Delay: pipelineRetryDelay})

	p.run(t, processor)

	for retry := 1; retry <= 3; retry++ {
		require.Eventually(t, func() bool {
			got := p.task(t, task.ID)
			return got.State == domain.TaskStateQueued && got.Retries == retry
		}, 2*time.Second, 5*time.Millisecond, "retry %d not scheduled", retry)

		got := p.task(t, task.ID)
		assert.Equal(t, retry, got.Deliveries)
		assert.WithinDuration(t, p.clock.Now().Add(pipelineRetryDelay), got.NotBefore, time.Millisecond)
		assert.Contains(t, got.LastError, domain.ErrMediaUnreadable.Error())

		p.clock.Advance(pipelineRetryDelay - time.Second)
		assert.Never(t, func() bool {
			return p.task(t, task.ID).Deliveries > retry
		}, 100*time.Millisecond, 10*time.Millisecond, "delivered before the retry delay elapsed")
		p.clock.Advance(time.Second)
	}

	require.Eventually(t, func() bool {
		return p.task(t, task.ID).State == domain.TaskStateFailed
	}, 2*time.Second, 5*time.Millisecond)

	got := p.task(t, task.ID)
	assert.Equal(t, 4, got.Deliveries)
	assert.Equal(t, 3, got.Retries)
	assert.Contains(t, got.LastError, domain.ErrRetriesExhausted.Error())

	stored, err := p.store.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusError, stored.Status)
	assert.Equal(t, 4, stored.Attempts)
	assert.NotEmpty(t, stored.ErrorMessage)
}

func TestPipeline_WorkerThatLostItsLeaseCannotRequeue(t *testing.T) {
	p := newPipeline(t)
	job, task := p.submit(t)
	ctx := context.Background()

	stale := dequeueNow(t, p.queue, "crashed-worker")
	p.clock.Advance(2 * time.Minute)

	inspector := mocks.NewMediaInspectorMock(t)
	inspector.EXPECT().Probe(mock.Anything, job.SourcePath).Return(100, nil).Once()
	extractor := mocks.NewFrameExtractorMock(t)
	extractor.EXPECT().ExtractFrame(mock.Anything, job.SourcePath, mock.Anything, mock.Anything).Return(nil).Once()
	thumbnails := mocks.NewThumbnailStoreMock(t)
	thumbnails.EXPECT().Publish(mock.Anything, job.ID, mock.Anything).Return("http://localhost/thumbnails/"+job.ID+".jpg", nil).Once()
	processor := service.NewProcessor(p.store, inspector, extractor, thumbnails,
		nil, t.TempDir(), domain.RetryPolicy{MaxRetries: 3, Delay: pipelineRetryDelay})

	p.run(t, processor)

	require.Eventually(t, func() bool {
		return p.task(t, task.ID).State == domain.TaskStateDone
	}, 2*time.Second, 5*time.Millisecond)

	err := p.queue.Schedule(ctx, stale.NextRetry("tool timed out"), "crashed-worker", p.clock.Now())
	assert.ErrorIs(t, err, domain.ErrLeaseLost)
	assert.ErrorIs(t, p.queue.Fail(ctx, stale.ID, "crashed-worker", "tool timed out"), domain.ErrLeaseLost)

	got := p.task(t, task.ID)
	assert.Equal(t, domain.TaskStateDone, got.State)
	assert.Equal(t, 2, got.Deliveries)
	assert.Zero(t, got.Retries)
	require.NotNil(t, got.Result)
	assert.Equal(t, 100.0, got.Result.DurationSeconds)

	stored, err := p.store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusDone, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
}
