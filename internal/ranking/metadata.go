package ranking

import (
	"sort"

	"github.com/jonathan/job-recommender/internal/types"
)

// ExtractMetadata returns every distinct required skill and every distinct title in the
// catalog, each sorted ascending. Values are reported exactly as they appear in the catalog.
func ExtractMetadata(catalog []types.JobRecord) types.Metadata {
	skills := make(map[string]bool)
	roles := make(map[string]bool)

	for _, job := range catalog {
		for _, skill := range job.RequiredSkills {
			skills[skill] = true
		}
		roles[job.Title] = true
	}

	return types.Metadata{
		Skills:   sortedKeys(skills),
		JobRoles: sortedKeys(roles),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
