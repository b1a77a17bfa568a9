package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jonathan/job-recommender/internal/types"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS jobs (
	id               INTEGER PRIMARY KEY,
	job_title        TEXT NOT NULL,
	company          TEXT NOT NULL,
	required_skills  TEXT NOT NULL DEFAULT '[]',
	location         TEXT NOT NULL,
	job_type         TEXT NOT NULL,
	experience_level TEXT NOT NULL
)`

// SQLiteStore keeps the catalog in a local SQLite file. Skills are stored as a JSON array.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the jobs table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create jobs table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// ListJobs returns every job ordered by id.
func (s *SQLiteStore) ListJobs(ctx context.Context) ([]types.JobRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, job_title, company, required_skills, location, job_type, experience_level
		 FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	jobs := make([]types.JobRecord, 0)
	for rows.Next() {
		var job types.JobRecord
		var skillsJSON string
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &skillsJSON, &job.Location, &job.JobType, &job.ExperienceLevel); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal([]byte(skillsJSON), &job.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to decode skills for job %d: %w", job.ID, err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// Metadata returns distinct skills and titles, computed in SQL.
func (s *SQLiteStore) Metadata(ctx context.Context) (*types.Metadata, error) {
	skills, err := s.queryStrings(ctx,
		`SELECT DISTINCT je.value FROM jobs, json_each(jobs.required_skills) AS je ORDER BY je.value`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	roles, err := s.queryStrings(ctx, `SELECT DISTINCT job_title FROM jobs ORDER BY job_title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job roles: %w", err)
	}

	return &types.Metadata{Skills: skills, JobRoles: roles}, nil
}

func (s *SQLiteStore) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// UpsertJobs inserts or replaces jobs by id in a single transaction.
func (s *SQLiteStore) UpsertJobs(ctx context.Context, jobs []types.JobRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO jobs (id, job_title, company, required_skills, location, job_type, experience_level)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, job := range jobs {
		skills := job.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		skillsJSON, err := json.Marshal(skills)
		if err != nil {
			return fmt.Errorf("failed to encode skills for job %d: %w", job.ID, err)
		}

		if _, err := stmt.ExecContext(ctx, job.ID, job.Title, job.Company, string(skillsJSON),
			job.Location, string(job.JobType), string(job.ExperienceLevel)); err != nil {
			return fmt.Errorf("failed to upsert job %d: %w", job.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit jobs: %w", err)
	}
	return nil
}
