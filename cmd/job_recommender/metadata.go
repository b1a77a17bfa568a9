package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/observability"
	"github.com/spf13/cobra"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "List the skills and job titles in the catalog",
	RunE:  runMetadata,
}

var (
	metadataCatalog []string
	metadataJSON    bool
)

func init() {
	metadataCmd.Flags().StringSliceVarP(&metadataCatalog, "catalog", "c", nil, "Catalog file(s) to read instead of the configured store")
	metadataCmd.Flags().BoolVar(&metadataJSON, "json", false, "Print metadata as JSON")
	rootCmd.AddCommand(metadataCmd)
}

func runMetadata(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := openReadStore(ctx, metadataCatalog)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer store.Close()

	return printMetadata(ctx, cmd.OutOrStdout(), store, metadataJSON)
}

func printMetadata(ctx context.Context, out io.Writer, store catalog.Store, asJSON bool) error {
	meta, err := store.Metadata(ctx)
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}

	if asJSON {
		return writeJSON(out, meta)
	}
	observability.NewPrinter(out).PrintMetadata(meta)
	return nil
}
