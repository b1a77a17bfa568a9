package catalog

import (
	"context"
	"sync"

	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/types"
)

// MemoryStore keeps the catalog in process. It is the store behind the "file" backend
// and the one tests use.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs []types.JobRecord
}

// NewMemoryStore creates a store holding a copy of jobs. IDs must be unique.
func NewMemoryStore(jobs []types.JobRecord) (*MemoryStore, error) {
	if err := checkUnique(jobs, "memory store"); err != nil {
		return nil, err
	}
	return &MemoryStore{jobs: cloneJobs(jobs)}, nil
}

// ListJobs returns a copy of the catalog in insertion order.
func (m *MemoryStore) ListJobs(_ context.Context) ([]types.JobRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneJobs(m.jobs), nil
}

// Metadata returns the distinct skills and titles in the catalog.
func (m *MemoryStore) Metadata(_ context.Context) (*types.Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meta := ranking.ExtractMetadata(m.jobs)
	return &meta, nil
}

// UpsertJobs replaces jobs with matching IDs in place and appends new ones.
func (m *MemoryStore) UpsertJobs(_ context.Context, jobs []types.JobRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := make(map[int64]int, len(m.jobs))
	for i, job := range m.jobs {
		index[job.ID] = i
	}

	for _, job := range jobs {
		if i, ok := index[job.ID]; ok {
			m.jobs[i] = job.Clone()
			continue
		}
		index[job.ID] = len(m.jobs)
		m.jobs = append(m.jobs, job.Clone())
	}
	return nil
}

// Replace swaps the whole catalog. On error the current catalog is kept.
func (m *MemoryStore) Replace(jobs []types.JobRecord) error {
	if err := checkUnique(jobs, "memory store"); err != nil {
		return err
	}
	fresh := cloneJobs(jobs)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = fresh
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() {}
