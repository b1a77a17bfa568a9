//go:build integration

// Run with: make test-integration (needs TEST_DATABASE_URL pointing at a scratch database).

package catalog

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/job-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestPostgres(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	store, err := ConnectPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean up test data before each test
	_, _ = store.pool.Exec(ctx, "DELETE FROM jobs")
	t.Cleanup(store.Close)
	return store
}

func TestIntegration_PostgresStore_UpsertAndList(t *testing.T) {
	store := getTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertJobs(ctx, testJobs()))

	jobs, err := store.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, int64(1), jobs[0].ID)
	assert.Equal(t, []string{"sql", "Excel"}, jobs[0].RequiredSkills)
	assert.Equal(t, types.ExperienceEntry, jobs[0].ExperienceLevel)

	t.Run("upsert replaces by id", func(t *testing.T) {
		require.NoError(t, store.UpsertJobs(ctx, []types.JobRecord{
			{ID: 1, Title: "Senior Data Analyst", Company: "Initech", Location: "London", JobType: types.JobTypeFullTime, ExperienceLevel: types.ExperienceSenior},
		}))

		jobs, err := store.ListJobs(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, "Senior Data Analyst", jobs[0].Title)
		assert.Empty(t, jobs[0].RequiredSkills)
	})
}

func TestIntegration_PostgresStore_Metadata(t *testing.T) {
	store := getTestPostgres(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertJobs(ctx, testJobs()))

	meta, err := store.Metadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Excel", "python", "sql"}, meta.Skills)
	assert.Equal(t, []string{"Data Analyst", "Software Engineer"}, meta.JobRoles)
}
