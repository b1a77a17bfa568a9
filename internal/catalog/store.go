// Package catalog provides read access to the job catalog and the stores that hold it.
package catalog

import (
	"context"
	"fmt"

	"github.com/jonathan/job-recommender/internal/types"
)

// Store is the read contract the recommender needs from a catalog.
// ListJobs returns a snapshot the caller may treat as its own; order is the store's
// natural order and is preserved by the ranking tie-break.
type Store interface {
	ListJobs(ctx context.Context) ([]types.JobRecord, error)
	Metadata(ctx context.Context) (*types.Metadata, error)
	Close()
}

// Writer is implemented by stores that can be seeded.
type Writer interface {
	UpsertJobs(ctx context.Context, jobs []types.JobRecord) error
}

// DuplicateJobError indicates two catalog entries share a job_id
type DuplicateJobError struct {
	ID     int64
	Source string
}

func (e *DuplicateJobError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("duplicate job_id %d in %s", e.ID, e.Source)
	}
	return fmt.Sprintf("duplicate job_id %d", e.ID)
}

// checkUnique returns a *DuplicateJobError for the first repeated ID.
func checkUnique(jobs []types.JobRecord, source string) error {
	seen := make(map[int64]bool, len(jobs))
	for _, job := range jobs {
		if seen[job.ID] {
			return &DuplicateJobError{ID: job.ID, Source: source}
		}
		seen[job.ID] = true
	}
	return nil
}

func cloneJobs(jobs []types.JobRecord) []types.JobRecord {
	out := make([]types.JobRecord, len(jobs))
	for i, job := range jobs {
		out[i] = job.Clone()
	}
	return out
}
