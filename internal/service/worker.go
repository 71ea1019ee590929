package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
	"golang.org/x/sync/errgroup"
)

// TaskProcessor runs one delivery of a task.
type TaskProcessor interface {
	Process(ctx context.Context, task *domain.Task) domain.Outcome
}

// WorkerPool leases tasks from the queue and acknowledges them according to
// the processor's outcome. In-flight tasks run to completion on shutdown.
type WorkerPool struct {
	queue     port.TaskQueue
	processor TaskProcessor
	workers   int
	lease     time.Duration
	name      string
	errDelay  time.Duration
	now       func() time.Time
}

func NewWorkerPool(queue port.TaskQueue, processor TaskProcessor, workers int, lease time.Duration) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "worker"
	}
	return &WorkerPool{
		queue:     queue,
		processor: processor,
		workers:   workers,
		lease:     lease,
		name:      fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		errDelay:  2 * time.Second,
		now:       time.Now,
	}
}

// SetClock replaces the clock used to compute retry times. It must be called
// before Run.
func (wp *WorkerPool) SetClock(now func() time.Time) {
	wp.now = now
}

// Run blocks until ctx is done and every worker has returned.
func (wp *WorkerPool) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range wp.workers {
		g.Go(func() error {
			wp.runWorker(gctx, i)
			return nil
		})
	}
	logger.Info.Printf("started %d workers (lease=%s)", wp.workers, wp.lease)
	return g.Wait()
}

func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
	owner := fmt.Sprintf("%s-%d", wp.name, id)
	for {
		task, err := wp.queue.Dequeue(ctx, owner, wp.lease)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info.Printf("worker %d shutting down", id)
				return
			}
			logger.Error.Printf("worker %d: failed to dequeue task: %v", id, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wp.errDelay):
			}
			continue
		}

		logger.Info.Printf("worker %d: processing task %s (job=%s, attempt=%d, delivery=%d)",
			id, task.ID, task.JobID, task.Attempt(), task.Deliveries)
		wp.handle(ctx, owner, task)
	}
}

func (wp *WorkerPool) handle(ctx context.Context, owner string, task *domain.Task) {
	work := context.WithoutCancel(ctx)

	hbCtx, stopHeartbeat := context.WithCancel(work)
	done := make(chan struct{})
	go func() {
		defer close(done)
		wp.heartbeat(hbCtx, owner, task)
	}()

	outcome := wp.processor.Process(work, task)
	stopHeartbeat()
	<-done

	var err error
	switch outcome.Kind {
	case domain.OutcomeOK:
		err = wp.queue.Complete(work, task.ID, owner, outcome.Result)
	case domain.OutcomeRetry:
		next := task.NextRetry(errorText(outcome.Err))
		err = wp.queue.Schedule(work, next, owner, wp.now().Add(outcome.Delay))
		if err == nil {
			logger.Info.Printf("task %s rescheduled in %s (retry %d/%d)", task.ID, outcome.Delay, next.Retries, next.MaxRetries)
		}
	case domain.OutcomeFatal:
		err = wp.queue.Fail(work, task.ID, owner, errorText(outcome.Err))
	default:
		err = fmt.Errorf("unknown outcome %s", outcome.Kind)
	}

	switch {
	case errors.Is(err, domain.ErrLeaseLost):
		logger.Warn.Printf("task %s: lease lost before %s acknowledgment", task.ID, outcome.Kind)
	case err != nil:
		logger.Error.Printf("task %s: failed to acknowledge %s outcome: %v", task.ID, outcome.Kind, err)
	default:
		logger.Debug.Printf("task %s acknowledged: %s", task.ID, outcome.Kind)
	}
}

func (wp *WorkerPool) heartbeat(ctx context.Context, owner string, task *domain.Task) {
	interval := wp.lease / 3
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := wp.queue.Extend(ctx, task.ID, owner, wp.lease)
			if errors.Is(err, domain.ErrLeaseLost) {
				logger.Warn.Printf("task %s: lease taken over by another worker", task.ID)
				return
			}
			if err != nil && ctx.Err() == nil {
				logger.Error.Printf("task %s: failed to extend lease: %v", task.ID, err)
			}
		}
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
