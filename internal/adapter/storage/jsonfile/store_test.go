package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("creates empty store if file doesn't exist", func(t *testing.T) {
		tempDir := t.TempDir()

		store, err := NewStore(tempDir)

		require.NoError(t, err)
		assert.Empty(t, store.jobs)
		_, err = os.Stat(filepath.Join(tempDir, "jobs.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("loads existing data from file", func(t *testing.T) {
		tempDir := t.TempDir()
		jobs := []*domain.Job{
			{ID: "a", OriginalName: "one.mp4", Status: domain.JobStatusDone, Terminal: true},
			{ID: "b", OriginalName: "two.mp4", Status: domain.JobStatusPending},
		}
		data, _ := json.MarshalIndent(jobs, "", "  ")
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "jobs.json"), data, 0600))

		store, err := NewStore(tempDir)

		require.NoError(t, err)
		assert.Len(t, store.jobs, 2)
		assert.Equal(t, "one.mp4", store.jobs["a"].OriginalName)
		assert.True(t, store.jobs["a"].Terminal)
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "jobs.json"), []byte("invalid json"), 0600))

		store, err := NewStore(tempDir)

		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("handles empty JSON file", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "jobs.json"), []byte(""), 0600))

		store, err := NewStore(tempDir)

		require.NoError(t, err)
		assert.Empty(t, store.jobs)
	})
}

func TestStore_CreateAndReload(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()
	store, err := NewStore(tempDir)
	require.NoError(t, err)

	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))
	assert.Error(t, store.Create(ctx, job), "duplicate ids are rejected")

	reopened, err := NewStore(tempDir)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, domain.JobStatusPending, got.Status)
	assert.True(t, job.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	got.Status = domain.JobStatusDone

	again, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, again.Status)
}

func TestStore_Get_NotFound(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))

	t.Run("applies and persists", func(t *testing.T) {
		updated, err := store.Update(ctx, job.ID, func(j *domain.Job) error {
			return j.MarkProcessing(time.Now())
		})
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusProcessing, updated.Status)

		got, err := store.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Attempts)
	})

	t.Run("error aborts the write", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := store.Update(ctx, job.ID, func(j *domain.Job) error {
			j.Status = domain.JobStatusDone
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := store.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusProcessing, got.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Update(ctx, "missing", func(*domain.Job) error { return nil })
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStore_Update_Concurrent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, job.ID, func(j *domain.Job) error {
				j.Attempts++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Attempts)
}

func TestStore_Delete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	job := domain.NewJob("clip.mp4", "/tmp/clip.mp4")
	require.NoError(t, store.Create(ctx, job))

	require.NoError(t, store.Delete(ctx, job.ID))

	_, err = store.Get(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, job.ID), domain.ErrNotFound)
}

func TestStore_List(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	now := time.Now().UTC()

	older := domain.NewJob("older.mp4", "/tmp/older.mp4")
	older.CreatedAt = now.Add(-2 * time.Hour)
	older.Status = domain.JobStatusDone
	older.Terminal = true
	newer := domain.NewJob("newer.mp4", "/tmp/newer.mp4")
	newer.CreatedAt = now
	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	all, err := store.List(ctx, domain.JobFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID, "newest first")

	done, err := store.List(ctx, domain.JobFilter{Status: domain.JobStatusDone})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, older.ID, done[0].ID)

	limited, err := store.List(ctx, domain.JobFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
