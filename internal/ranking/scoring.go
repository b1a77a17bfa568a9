// Package ranking scores catalog jobs against a user profile and selects the best matches.
package ranking

import (
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

// Weights for scoring components
const (
	skillMatchWeight      = 3
	experienceMatchPoints = 4
	locationMatchPoints   = 3
	jobTypeMatchPoints    = 2

	// MaxScore bounds every score so it can be shown as "N/20".
	MaxScore = 20
)

// normalizeSkill lower-cases and trims a skill so "Python " and "python" compare equal.
func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// skillSet builds a set of normalized, non-blank skills.
func skillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if normalized := normalizeSkill(skill); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// splitSkills partitions a job's required skills into those the profile has and those it lacks.
// Both lists keep the job's listing order and original spelling. sharedCount is the number
// of distinct normalized skills in common.
func splitSkills(jobSkills []string, profileSkills map[string]bool) (matching, missing []string, sharedCount int) {
	matching = make([]string, 0)
	missing = make([]string, 0)
	seen := make(map[string]bool, len(jobSkills))

	for _, skill := range jobSkills {
		normalized := normalizeSkill(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		if profileSkills[normalized] {
			matching = append(matching, skill)
			sharedCount++
		} else {
			missing = append(missing, skill)
		}
	}

	return matching, missing, sharedCount
}

// computeScore adds up the weighted components for a candidate and clamps to MaxScore.
// Overlap beyond a few skills stops differentiating jobs once the cap is reached.
func computeScore(job *types.JobRecord, profile *profileIndex, sharedSkills int) int {
	score := sharedSkills * skillMatchWeight

	if job.ExperienceLevel == profile.experienceLevel {
		score += experienceMatchPoints
	}

	if profile.locations[job.Location] {
		score += locationMatchPoints
	}

	if job.JobType == profile.jobType {
		score += jobTypeMatchPoints
	}

	return min(score, MaxScore)
}
