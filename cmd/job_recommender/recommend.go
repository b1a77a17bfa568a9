package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/observability"
	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/schemas"
	"github.com/jonathan/job-recommender/internal/types"
	"github.com/jonathan/job-recommender/internal/validation"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend jobs for a profile",
	Long: `Read a user profile JSON file, rank the catalog against it and print the top matches.

The profile must validate against schemas/user_profile.schema.json. Use --catalog to rank
one or more job_postings.json files instead of the configured store.`,
	RunE: runRecommend,
}

var (
	recommendProfile string
	recommendCatalog []string
	recommendJSON    bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to user profile JSON file")
	recommendCmd.Flags().StringSliceVarP(&recommendCatalog, "catalog", "c", nil, "Catalog file(s) to rank instead of the configured store")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print recommendations as JSON")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := loadProfile(cmd.OutOrStdout(), recommendProfile)
	if err != nil {
		return err
	}

	store, err := openReadStore(ctx, recommendCatalog)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer store.Close()

	return recommend(ctx, cmd.OutOrStdout(), store, profile, recommendJSON)
}

// loadProfile reads and validates a profile file. Validation problems are printed to out.
func loadProfile(out io.Writer, path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	if err := schemas.ValidateProfileDocument(data); err != nil {
		return nil, err
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if err := validation.ValidateProfile(&profile); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			observability.NewPrinter(out).PrintValidationErrors(verr)
		}
		return nil, err
	}

	return &profile, nil
}

// recommend ranks the store's catalog for profile and writes the result to out.
func recommend(ctx context.Context, out io.Writer, store catalog.Store, profile *types.UserProfile, asJSON bool) error {
	jobs, err := store.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	recs := ranking.Recommend(jobs, *profile)

	if asJSON {
		return writeJSON(out, recs)
	}
	observability.NewPrinter(out).PrintRecommendations(recs)
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
