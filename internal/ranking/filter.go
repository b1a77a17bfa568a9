package ranking

import (
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

// profileIndex is a profile pre-processed for repeated lookups across the catalog.
type profileIndex struct {
	skills          map[string]bool
	roles           []string
	locations       map[string]bool
	jobType         types.JobType
	experienceLevel types.ExperienceLevel
}

func newProfileIndex(profile *types.UserProfile) *profileIndex {
	roles := make([]string, 0, len(profile.Preferences.DesiredRoles))
	for _, role := range profile.Preferences.DesiredRoles {
		// A blank role is a substring of every title; drop it
		if r := strings.ToLower(strings.TrimSpace(role)); r != "" {
			roles = append(roles, r)
		}
	}

	locations := make(map[string]bool, len(profile.Preferences.Locations))
	for _, loc := range profile.Preferences.Locations {
		locations[loc] = true
	}

	return &profileIndex{
		skills:          skillSet(profile.Skills),
		roles:           roles,
		locations:       locations,
		jobType:         profile.Preferences.JobType,
		experienceLevel: profile.ExperienceLevel,
	}
}

// matchesRole reports whether any desired role appears inside the job title, ignoring case.
func (p *profileIndex) matchesRole(title string) bool {
	titleLower := strings.ToLower(title)
	for _, role := range p.roles {
		if strings.Contains(titleLower, role) {
			return true
		}
	}
	return false
}
