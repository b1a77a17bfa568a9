package catalog

import (
	"context"
	"embed"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/job-recommender/internal/types"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// DISTINCT requires ORDER BY to name a select-list entry, so the collation lives in the
// select list and the sort refers to it by position.
const (
	pgDistinctSkillsQuery = `SELECT DISTINCT s.skill COLLATE "C" AS skill
		FROM jobs, unnest(jobs.required_skills) AS s(skill)
		ORDER BY 1`
	pgDistinctRolesQuery = `SELECT DISTINCT job_title COLLATE "C" AS job_title FROM jobs ORDER BY 1`
)

// PostgresStore keeps the catalog in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and applies the embedded schema.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("[catalog] postgres connected to %s", config.ConnConfig.Host)
	return store, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := s.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// ListJobs returns every job ordered by id.
func (s *PostgresStore) ListJobs(ctx context.Context) ([]types.JobRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_title, company, required_skills, location, job_type, experience_level
		 FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]types.JobRecord, 0)
	for rows.Next() {
		var job types.JobRecord
		var jobType, level string
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.RequiredSkills, &job.Location, &jobType, &level); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		job.JobType = types.JobType(jobType)
		job.ExperienceLevel = types.ExperienceLevel(level)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// Metadata returns distinct skills and titles, computed in SQL. Byte-order collation keeps
// the ordering identical to the other stores.
func (s *PostgresStore) Metadata(ctx context.Context) (*types.Metadata, error) {
	skills, err := s.queryStrings(ctx, pgDistinctSkillsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	roles, err := s.queryStrings(ctx, pgDistinctRolesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list job roles: %w", err)
	}

	return &types.Metadata{Skills: skills, JobRoles: roles}, nil
}

func (s *PostgresStore) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// UpsertJobs inserts jobs or updates existing ones by id in a single transaction.
func (s *PostgresStore) UpsertJobs(ctx context.Context, jobs []types.JobRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, job := range jobs {
		skills := job.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		batch.Queue(
			`INSERT INTO jobs (id, job_title, company, required_skills, location, job_type, experience_level)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO UPDATE SET
			   job_title = EXCLUDED.job_title,
			   company = EXCLUDED.company,
			   required_skills = EXCLUDED.required_skills,
			   location = EXCLUDED.location,
			   job_type = EXCLUDED.job_type,
			   experience_level = EXCLUDED.experience_level`,
			job.ID, job.Title, job.Company, skills, job.Location, string(job.JobType), string(job.ExperienceLevel),
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert jobs: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit jobs: %w", err)
	}
	return nil
}
