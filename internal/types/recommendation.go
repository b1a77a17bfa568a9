//nolint:revive // types is a standard Go package name pattern
package types

// ScoredRecommendation is a catalog job annotated with its match score.
type ScoredRecommendation struct {
	ID              int64           `json:"job_id"`
	Title           string          `json:"job_title"`
	Company         string          `json:"company"`
	RequiredSkills  []string        `json:"required_skills"`
	Location        string          `json:"location"`
	JobType         JobType         `json:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Score           int             `json:"score"`
	// MatchingSkills are the required skills the profile already has, in job order
	MatchingSkills []string `json:"matching_skills"`
	// MissingSkills are the required skills the profile lacks, in job order
	MissingSkills []string `json:"missing_skills"`
}
