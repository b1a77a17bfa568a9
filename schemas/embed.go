// Package schemas holds the JSON Schemas for the documents the recommender reads.
package schemas

import _ "embed"

// UserProfile is the schema for a recommendation request body.
//
//go:embed user_profile.schema.json
var UserProfile string

// JobPostings is the schema for a job_postings.json catalog file.
//
//go:embed job_postings.schema.json
var JobPostings string
