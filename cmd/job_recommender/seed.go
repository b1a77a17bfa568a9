package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load job_postings.json files into the configured database",
	Long: `Validate one or more job_postings.json files against schemas/job_postings.schema.json
and upsert them into the SQLite or PostgreSQL catalog. Jobs are keyed by job_id, so
seeding is idempotent. A Redis catalog cache, if configured, is invalidated.`,
	RunE: runSeed,
}

var (
	seedCatalog []string
)

func init() {
	seedCmd.Flags().StringSliceVarP(&seedCatalog, "catalog", "c", nil, "Catalog file(s) to load")

	if err := seedCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store == config.StoreFile {
		return fmt.Errorf("seed requires a database store (set CATALOG_STORE to sqlite or postgres)")
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer store.Close()

	return seed(ctx, cmd.OutOrStdout(), store, seedCatalog)
}

// seed validates every file, then upserts their combined jobs into store.
func seed(ctx context.Context, out io.Writer, store catalog.Store, paths []string) error {
	writer, ok := store.(catalog.Writer)
	if !ok {
		return fmt.Errorf("catalog store %T is read-only", store)
	}

	g, _ := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			return schemas.ValidateCatalogFile(path)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	jobs, err := catalog.LoadFiles(ctx, paths...)
	if err != nil {
		return err
	}

	if err := writer.UpsertJobs(ctx, jobs); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Seeded %d jobs from %d file(s)\n", len(jobs), len(paths))
	return nil
}
