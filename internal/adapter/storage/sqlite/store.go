package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/vidqueue/internal/adapter/storage/sqlite/sqlitedb"
	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/port"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store keeps job records in SQLite. The same database also backs TaskQueue.
type Store struct {
	db      *sql.DB
	queries *sqlitedb.Queries
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA cache_size = -8000", // 8MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "vidqueue.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One writer at a time keeps ClaimTask and Update atomic without extra locking.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		db:      db,
		queries: sqlitedb.New(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Create(ctx context.Context, job *domain.Job) error {
	err := s.queries.InsertJob(ctx, sqlitedb.InsertJobParams{
		ID:                  job.ID,
		OriginalName:        job.OriginalName,
		SourcePath:          job.SourcePath,
		Status:              string(job.Status),
		DurationSeconds:     job.DurationSeconds,
		DurationDisplay:     job.DurationDisplay,
		ThumbnailPath:       job.ThumbnailPath,
		ThumbnailUrl:        job.ThumbnailURL,
		ErrorMessage:        job.ErrorMessage,
		Attempts:            int64(job.Attempts),
		Terminal:            boolToInt(job.Terminal),
		CreatedAt:           job.CreatedAt,
		ProcessingStartedAt: nullTime(job.ProcessingStartedAt),
		CompletedAt:         nullTime(job.CompletedAt),
	})
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*domain.Job, error) {
	row, err := s.queries.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return jobFromRow(row), nil
}

func (s *Store) Update(ctx context.Context, id string, fn func(*domain.Job) error) (*domain.Job, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := s.queries.WithTx(tx)
	row, err := q.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	job := jobFromRow(row)
	if err := fn(job); err != nil {
		return nil, err
	}

	err = q.UpdateJob(ctx, sqlitedb.UpdateJobParams{
		Status:              string(job.Status),
		DurationSeconds:     job.DurationSeconds,
		DurationDisplay:     job.DurationDisplay,
		ThumbnailPath:       job.ThumbnailPath,
		ThumbnailUrl:        job.ThumbnailURL,
		ErrorMessage:        job.ErrorMessage,
		Attempts:            int64(job.Attempts),
		Terminal:            boolToInt(job.Terminal),
		ProcessingStartedAt: nullTime(job.ProcessingStartedAt),
		CompletedAt:         nullTime(job.CompletedAt),
		ID:                  id,
	})
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return job, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.queries.DeleteJob(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	limit := int64(-1)
	if filter.Limit > 0 {
		limit = int64(filter.Limit)
	}
	var before sql.NullTime
	if !filter.CreatedBefore.IsZero() {
		before = sql.NullTime{Time: filter.CreatedBefore.UTC(), Valid: true}
	}

	rows, err := s.queries.ListJobs(ctx, sqlitedb.ListJobsParams{
		Status:        string(filter.Status),
		TerminalOnly:  boolToInt(filter.TerminalOnly),
		CreatedBefore: before,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]*domain.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, jobFromRow(row))
	}
	return jobs, nil
}

func jobFromRow(row sqlitedb.Job) *domain.Job {
	return &domain.Job{
		ID:                  row.ID,
		OriginalName:        row.OriginalName,
		SourcePath:          row.SourcePath,
		Status:              domain.JobStatus(row.Status),
		DurationSeconds:     row.DurationSeconds,
		DurationDisplay:     row.DurationDisplay,
		ThumbnailPath:       row.ThumbnailPath,
		ThumbnailURL:        row.ThumbnailUrl,
		ErrorMessage:        row.ErrorMessage,
		Attempts:            int(row.Attempts),
		Terminal:            row.Terminal != 0,
		CreatedAt:           row.CreatedAt.UTC(),
		ProcessingStartedAt: timePtr(row.ProcessingStartedAt),
		CompletedAt:         timePtr(row.CompletedAt),
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

var _ port.JobStore = (*Store)(nil)
