// Package ranking scores catalog jobs against a user profile and selects the best matches.
package ranking

import (
	"sort"

	"github.com/jonathan/job-recommender/internal/types"
)

// MaxRecommendations is the size of the shortlist returned by Recommend.
const MaxRecommendations = 5

// Recommend filters the catalog down to candidates for the profile, scores them, and returns
// at most MaxRecommendations results ordered by score descending. Jobs with equal scores keep
// their catalog order. The catalog is treated as a read-only snapshot and is not modified.
//
// A job is a candidate only when one of the desired roles is a case-insensitive substring of
// its title and it shares at least one skill with the profile. Everything else is dropped
// without a score, so an empty result is a normal outcome.
func Recommend(catalog []types.JobRecord, profile types.UserProfile) []types.ScoredRecommendation {
	index := newProfileIndex(&profile)
	scored := make([]types.ScoredRecommendation, 0)

	if len(index.roles) == 0 || len(index.skills) == 0 {
		return scored
	}

	for i := range catalog {
		job := &catalog[i]
		if !index.matchesRole(job.Title) {
			continue
		}

		matching, missing, shared := splitSkills(job.RequiredSkills, index.skills)
		if shared == 0 {
			continue
		}

		scored = append(scored, types.ScoredRecommendation{
			ID:              job.ID,
			Title:           job.Title,
			Company:         job.Company,
			RequiredSkills:  append([]string{}, job.RequiredSkills...),
			Location:        job.Location,
			JobType:         job.JobType,
			ExperienceLevel: job.ExperienceLevel,
			Score:           computeScore(job, index, shared),
			MatchingSkills:  matching,
			MissingSkills:   missing,
		})
	}

	// Stable so ties keep catalog order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}

	return scored
}
