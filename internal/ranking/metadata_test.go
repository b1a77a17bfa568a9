package ranking

import (
	"testing"

	"github.com/jonathan/job-recommender/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractMetadata(t *testing.T) {
	catalog := []types.JobRecord{
		{ID: 1, Title: "Software Engineer", RequiredSkills: []string{"python", "sql"}},
		{ID: 2, Title: "Data Engineer", RequiredSkills: []string{"python", "Spark"}},
		{ID: 3, Title: "Software Engineer", RequiredSkills: nil},
	}

	meta := ExtractMetadata(catalog)

	assert.Equal(t, []string{"Spark", "python", "sql"}, meta.Skills)
	assert.Equal(t, []string{"Data Engineer", "Software Engineer"}, meta.JobRoles)
}

func TestExtractMetadata_EmptyCatalog(t *testing.T) {
	meta := ExtractMetadata(nil)

	assert.NotNil(t, meta.Skills)
	assert.NotNil(t, meta.JobRoles)
	assert.Empty(t, meta.Skills)
	assert.Empty(t, meta.JobRoles)
}
