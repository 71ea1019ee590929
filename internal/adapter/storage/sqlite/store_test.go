package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_CreateGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/data/uploads/clip.mp4")

	require.NoError(t, store.Create(ctx, job))

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, "clip.mp4", got.OriginalName)
	assert.Equal(t, domain.JobStatusPending, got.Status)
	assert.WithinDuration(t, job.CreatedAt, got.CreatedAt, time.Millisecond)
	assert.Nil(t, got.ProcessingStartedAt)
	assert.Nil(t, got.CompletedAt)
}

func TestStore_Create_DuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")

	require.NoError(t, store.Create(ctx, job))
	assert.Error(t, store.Create(ctx, job))
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))
	now := time.Now().UTC()

	updated, err := store.Update(ctx, job.ID, func(j *domain.Job) error {
		if err := j.MarkProcessing(now); err != nil {
			return err
		}
		return j.MarkDone(domain.ProcessedResult{
			JobID:           j.ID,
			DurationSeconds: 100,
			DurationDisplay: "00:01:40",
			ThumbnailPath:   "/thumbs/t.jpg",
			ThumbnailURL:    "http://localhost/thumbnails/t.jpg",
		}, now)
	})
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusDone, updated.Status)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusDone, got.Status)
	assert.True(t, got.Terminal)
	assert.Equal(t, 1, got.Attempts)
	assert.Equal(t, 100.0, got.DurationSeconds)
	assert.Equal(t, "00:01:40", got.DurationDisplay)
	assert.Equal(t, "http://localhost/thumbnails/t.jpg", got.ThumbnailURL)
	require.NotNil(t, got.ProcessingStartedAt)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, now, *got.CompletedAt, time.Millisecond)
}

func TestStore_Update_AbortKeepsRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))
	boom := errors.New("boom")

	_, err := store.Update(ctx, job.ID, func(j *domain.Job) error {
		j.Status = domain.JobStatusDone
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, got.Status)
}

func TestStore_Update_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Update(context.Background(), "missing", func(*domain.Job) error { return nil })

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))

	require.NoError(t, store.Delete(ctx, job.ID))

	_, err := store.Get(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, job.ID), domain.ErrNotFound)
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	old := domain.NewJob("old.mp4", "/tmp/old.mp4")
	old.CreatedAt = now.Add(-40 * 24 * time.Hour)
	old.Status = domain.JobStatusDone
	old.Terminal = true

	retrying := domain.NewJob("retry.mp4", "/tmp/retry.mp4")
	retrying.CreatedAt = now.Add(-40 * 24 * time.Hour)
	retrying.Status = domain.JobStatusError

	fresh := domain.NewJob("fresh.mp4", "/tmp/fresh.mp4")
	fresh.CreatedAt = now

	for _, j := range []*domain.Job{old, retrying, fresh} {
		require.NoError(t, store.Create(ctx, j))
	}

	tests := []struct {
		name   string
		filter domain.JobFilter
		want   []string
	}{
		{"all newest first", domain.JobFilter{}, []string{fresh.ID, old.ID, retrying.ID}},
		{"by status", domain.JobFilter{Status: domain.JobStatusError}, []string{retrying.ID}},
		{"expired terminal", domain.JobFilter{TerminalOnly: true, CreatedBefore: now.Add(-30 * 24 * time.Hour)}, []string{old.ID}},
		{"limit", domain.JobFilter{Limit: 1}, []string{fresh.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := store.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(jobs))
			for _, j := range jobs {
				ids = append(ids, j.ID)
			}
			if tt.name == "all newest first" {
				// old and retrying share a timestamp
				assert.Equal(t, fresh.ID, ids[0])
				assert.ElementsMatch(t, tt.want, ids)
				return
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
