package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/port"
)

// Store keeps every job in memory and rewrites jobs.json on each mutation.
// Callers always receive copies.
type Store struct {
	mu   sync.RWMutex
	path string
	jobs map[string]*domain.Job
}

func NewStore(dataDir string) (*Store, error) {
	store := &Store{
		path: filepath.Join(dataDir, "jobs.json"),
		jobs: make(map[string]*domain.Job),
	}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var jobs []*domain.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	for _, j := range jobs {
		s.jobs[j.ID] = j
	}
	return nil
}

// save must be called with mu held.
func (s *Store) save() error {
	jobs := make([]*domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(a, b int) bool { return jobs[a].ID < jobs[b].ID })

	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

func (s *Store) Create(_ context.Context, job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}
	s.jobs[job.ID] = job.Clone()
	if err := s.save(); err != nil {
		delete(s.jobs, job.ID)
		return err
	}
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return j.Clone(), nil
}

func (s *Store) Update(_ context.Context, id string, fn func(*domain.Job) error) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	s.jobs[id] = next
	if err := s.save(); err != nil {
		s.jobs[id] = current
		return nil, err
	}
	return next.Clone(), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.jobs, id)
	if err := s.save(); err != nil {
		s.jobs[id] = current
		return err
	}
	return nil
}

func (s *Store) List(_ context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []*domain.Job
	for _, j := range s.jobs {
		if filter.Match(j) {
			jobs = append(jobs, j.Clone())
		}
	}
	sort.Slice(jobs, func(a, b int) bool { return jobs[a].CreatedAt.After(jobs[b].CreatedAt) })

	if filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}

var _ port.JobStore = (*Store)(nil)
