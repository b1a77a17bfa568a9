// Package types provides type definitions for structured data used throughout the job recommender.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// JobType is the employment arrangement of a posting.
type JobType string

// Known job types.
const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

// JobTypes lists every accepted job type in display order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract}

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ExperienceLevel is the seniority a posting targets.
type ExperienceLevel string

// Known experience levels.
const (
	ExperienceEntry  ExperienceLevel = "Entry-level"
	ExperienceMid    ExperienceLevel = "Mid-level"
	ExperienceSenior ExperienceLevel = "Senior-level"
)

// ExperienceLevels lists every accepted experience level in display order.
var ExperienceLevels = []ExperienceLevel{ExperienceEntry, ExperienceMid, ExperienceSenior}

// Valid reports whether l is one of the known experience levels.
func (l ExperienceLevel) Valid() bool {
	for _, known := range ExperienceLevels {
		if l == known {
			return true
		}
	}
	return false
}

// JobRecord is a single posting in the catalog. The JSON shape matches job_postings.json.
type JobRecord struct {
	ID              int64           `json:"job_id"`
	Title           string          `json:"job_title"`
	Company         string          `json:"company"`
	RequiredSkills  []string        `json:"required_skills"`
	Location        string          `json:"location"`
	JobType         JobType         `json:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
}

// Clone returns a deep copy of the record so the skill slice is not shared.
func (j JobRecord) Clone() JobRecord {
	out := j
	out.RequiredSkills = slices.Clone(j.RequiredSkills)
	return out
}

// Metadata summarizes the catalog for building profile forms.
type Metadata struct {
	Skills   []string `json:"skills"`
	JobRoles []string `json:"job_roles"`
}
