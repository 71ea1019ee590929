package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/backoff"
	"github.com/bnema/vidqueue/internal/port"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "vidqueue:"

// TaskQueue keeps each task in a hash, due tasks in a zset scored by
// not_before and leased tasks in a zset scored by lease expiry. Every state
// change runs as a Lua script so lease checks and moves are atomic.
type TaskQueue struct {
	client *redis.Client
	prefix string
	poller *backoff.Poller
	now    func() time.Time
}

func NewClient(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewTaskQueue(client *redis.Client, idle *backoff.Backoff) *TaskQueue {
	if idle == nil {
		idle = backoff.New(100*time.Millisecond, 2*time.Second, 2)
	}
	return &TaskQueue{
		client: client,
		prefix: defaultPrefix,
		poller: backoff.NewPoller(idle),
		now:    time.Now,
	}
}

func (q *TaskQueue) queueKey() string         { return q.prefix + "queue" }
func (q *TaskQueue) leaseKey() string         { return q.prefix + "leases" }
func (q *TaskQueue) jobIndexKey() string      { return q.prefix + "jobs" }
func (q *TaskQueue) taskKey(id string) string { return q.prefix + "task:" + id }

func (q *TaskQueue) Enqueue(ctx context.Context, task *domain.Task) error {
	now := q.now().UnixMilli()
	err := enqueueScript.Run(ctx, q.client,
		[]string{q.queueKey(), q.leaseKey(), q.jobIndexKey(), q.taskKey(task.ID)},
		task.ID, task.JobID, task.Retries, task.MaxRetries, now, task.LastError, now,
	).Err()
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}
	q.poller.Wake()
	return nil
}

func (q *TaskQueue) Schedule(ctx context.Context, task *domain.Task, owner string, notBefore time.Time) error {
	n, err := scheduleScript.Run(ctx, q.client,
		[]string{q.queueKey(), q.leaseKey(), q.taskKey(task.ID)},
		task.ID, owner, task.Retries, notBefore.UnixMilli(), task.LastError, q.now().UnixMilli(),
	).Int()
	if err != nil {
		return fmt.Errorf("schedule task: %w", err)
	}
	if n == 0 {
		return domain.ErrLeaseLost
	}
	q.poller.Wake()
	return nil
}

func (q *TaskQueue) Dequeue(ctx context.Context, owner string, lease time.Duration) (*domain.Task, error) {
	for idle := 0; ; idle++ {
		task, err := q.claim(ctx, owner, lease)
		if err != nil {
			return nil, err
		}
		if task != nil {
			return task, nil
		}
		if err := q.poller.Wait(ctx, idle); err != nil {
			return nil, err
		}
	}
}

func (q *TaskQueue) claim(ctx context.Context, owner string, lease time.Duration) (*domain.Task, error) {
	now := q.now()
	res, err := claimScript.Run(ctx, q.client,
		[]string{q.queueKey(), q.leaseKey()},
		now.UnixMilli(), owner, now.Add(lease).UnixMilli(), q.prefix+"task:",
	).Slice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("claim task: %w", err)
	}
	return taskFromPairs(res)
}

func (q *TaskQueue) Extend(ctx context.Context, taskID, owner string, lease time.Duration) error {
	now := q.now()
	n, err := extendScript.Run(ctx, q.client,
		[]string{q.leaseKey(), q.taskKey(taskID)},
		taskID, owner, now.Add(lease).UnixMilli(), now.UnixMilli(),
	).Int()
	return ackResult(n, err)
}

func (q *TaskQueue) Complete(ctx context.Context, taskID, owner string, result *domain.ProcessedResult) error {
	var encoded string
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		encoded = string(b)
	}
	n, err := finishScript.Run(ctx, q.client,
		[]string{q.leaseKey(), q.taskKey(taskID)},
		taskID, owner, string(domain.TaskStateDone), "result", encoded, q.now().UnixMilli(),
	).Int()
	return ackResult(n, err)
}

func (q *TaskQueue) Fail(ctx context.Context, taskID, owner, errMsg string) error {
	n, err := finishScript.Run(ctx, q.client,
		[]string{q.leaseKey(), q.taskKey(taskID)},
		taskID, owner, string(domain.TaskStateFailed), "last_error", errMsg, q.now().UnixMilli(),
	).Int()
	return ackResult(n, err)
}

func (q *TaskQueue) Get(ctx context.Context, taskID string) (*domain.Task, error) {
	fields, err := q.client.HGetAll(ctx, q.taskKey(taskID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}
	return taskFromMap(fields)
}

func (q *TaskQueue) DeleteByJob(ctx context.Context, jobID string) error {
	id, err := q.client.HGet(ctx, q.jobIndexKey(), jobID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, q.taskKey(id))
		pipe.ZRem(ctx, q.queueKey(), id)
		pipe.ZRem(ctx, q.leaseKey(), id)
		pipe.HDel(ctx, q.jobIndexKey(), jobID)
		return nil
	})
	return err
}

func ackResult(n int, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLeaseLost
	}
	return nil
}

func taskFromPairs(pairs []interface{}) (*domain.Task, error) {
	fields := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		k, _ := pairs[i].(string)
		v, _ := pairs[i+1].(string)
		fields[k] = v
	}
	return taskFromMap(fields)
}

func taskFromMap(f map[string]string) (*domain.Task, error) {
	task := &domain.Task{
		ID:         f["id"],
		JobID:      f["job_id"],
		State:      domain.TaskState(f["state"]),
		Retries:    atoi(f["retries"]),
		MaxRetries: atoi(f["max_retries"]),
		NotBefore:  fromMillis(f["not_before"]),
		LeaseOwner: f["lease_owner"],
		Deliveries: atoi(f["deliveries"]),
		LastError:  f["last_error"],
		CreatedAt:  fromMillis(f["created_at"]),
		UpdatedAt:  fromMillis(f["updated_at"]),
	}
	if v := f["lease_expires_at"]; v != "" && v != "0" {
		task.LeaseExpiresAt = fromMillis(v)
	}
	if v := f["completed_at"]; v != "" {
		t := fromMillis(v)
		task.CompletedAt = &t
	}
	if v := f["result"]; v != "" {
		var result domain.ProcessedResult
		if err := json.Unmarshal([]byte(v), &result); err != nil {
			return nil, fmt.Errorf("decode task result: %w", err)
		}
		task.Result = &result
	}
	return task, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func fromMillis(s string) time.Time {
	ms, _ := strconv.ParseInt(s, 10, 64)
	return time.UnixMilli(ms).UTC()
}

var _ port.TaskQueue = (*TaskQueue)(nil)
