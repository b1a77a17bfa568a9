package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// ReloadFunc refreshes a store from its source of truth.
type ReloadFunc func(ctx context.Context) error

// Refresher reloads the catalog on a cron schedule, e.g. "@every 10m" or "0 * * * *".
type Refresher struct {
	cron     *cron.Cron
	schedule string
	reload   ReloadFunc

	mu   sync.Mutex
	runs int
}

// NewRefresher validates schedule and returns a stopped Refresher.
func NewRefresher(schedule string, reload ReloadFunc) (*Refresher, error) {
	if reload == nil {
		return nil, fmt.Errorf("reload function is required")
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	return &Refresher{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		schedule: schedule,
		reload:   reload,
	}, nil
}

// Start registers the reload job and starts the scheduler.
func (r *Refresher) Start(ctx context.Context) error {
	if _, err := r.cron.AddFunc(r.schedule, func() { r.Run(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule catalog refresh: %w", err)
	}

	r.cron.Start()
	log.Printf("[catalog] refresh scheduled: %s", r.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running reload to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	log.Println("[catalog] refresh stopped")
}

// Run reloads once. Failures are logged; the previous catalog stays in service.
func (r *Refresher) Run(ctx context.Context) {
	if err := r.reload(ctx); err != nil {
		log.Printf("[catalog] refresh failed: %v", err)
		return
	}

	r.mu.Lock()
	r.runs++
	r.mu.Unlock()
}

// Runs reports how many reloads have succeeded.
func (r *Refresher) Runs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// FileReloader returns a ReloadFunc that re-reads paths into store.
func FileReloader(store *MemoryStore, paths ...string) ReloadFunc {
	return func(ctx context.Context) error {
		jobs, err := LoadFiles(ctx, paths...)
		if err != nil {
			return err
		}
		return store.Replace(jobs)
	}
}
