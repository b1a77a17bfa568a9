package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-recommender/internal/types"
	"golang.org/x/sync/errgroup"
)

// LoadFile reads a job_postings.json catalog file.
func LoadFile(path string) ([]types.JobRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var jobs []types.JobRecord
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := checkUnique(jobs, path); err != nil {
		return nil, err
	}

	return jobs, nil
}

// LoadFiles reads several catalog files concurrently and concatenates them in argument
// order. A job_id repeated across files is an error.
func LoadFiles(ctx context.Context, paths ...string) ([]types.JobRecord, error) {
	results := make([][]types.JobRecord, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			jobs, err := LoadFile(path)
			if err != nil {
				return err
			}
			// Each goroutine owns its own slot
			results[i] = jobs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.JobRecord
	for _, jobs := range results {
		all = append(all, jobs...)
	}

	if err := checkUnique(all, "catalog files"); err != nil {
		return nil, err
	}

	return all, nil
}

// OpenFileStore loads one or more catalog files into a MemoryStore.
func OpenFileStore(ctx context.Context, paths ...string) (*MemoryStore, error) {
	jobs, err := LoadFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(jobs)
}
