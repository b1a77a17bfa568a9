package ranking

import (
	"fmt"
	"testing"

	"github.com/jonathan/job-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineerProfile() types.UserProfile {
	return types.UserProfile{
		Skills: []string{"python"},
		Preferences: types.Preferences{
			DesiredRoles: []string{"engineer"},
			Locations:    []string{"Remote"},
			JobType:      types.JobTypeFullTime,
		},
		ExperienceLevel: types.ExperienceMid,
	}
}

func softwareEngineerJob() types.JobRecord {
	return types.JobRecord{
		ID:              1,
		Title:           "Software Engineer",
		Company:         "Acme",
		RequiredSkills:  []string{"python", "sql"},
		Location:        "Remote",
		JobType:         types.JobTypeFullTime,
		ExperienceLevel: types.ExperienceMid,
	}
}

func TestRecommend_SingleFullMatch(t *testing.T) {
	catalog := []types.JobRecord{softwareEngineerJob()}

	recs := Recommend(catalog, engineerProfile())
	require.Len(t, recs, 1)

	// 3 (one skill) + 4 (level) + 3 (location) + 2 (type)
	assert.Equal(t, 12, recs[0].Score)
	assert.Equal(t, "Software Engineer", recs[0].Title)
	assert.Equal(t, "Acme", recs[0].Company)
	assert.Equal(t, []string{"python", "sql"}, recs[0].RequiredSkills)
	assert.Equal(t, []string{"python"}, recs[0].MatchingSkills)
	assert.Equal(t, []string{"sql"}, recs[0].MissingSkills)
}

func TestRecommend_RoleMismatch(t *testing.T) {
	profile := engineerProfile()
	profile.Preferences.DesiredRoles = []string{"manager"}

	recs := Recommend([]types.JobRecord{softwareEngineerJob()}, profile)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommend_RoleIsCaseInsensitiveSubstring(t *testing.T) {
	job := softwareEngineerJob()
	job.Title = "Senior Software ENGINEER II"

	profile := engineerProfile()
	profile.Preferences.DesiredRoles = []string{"Designer", "Engineer"}

	recs := Recommend([]types.JobRecord{job}, profile)
	require.Len(t, recs, 1)
}

func TestRecommend_NoSharedSkill(t *testing.T) {
	profile := engineerProfile()
	profile.Skills = []string{"java"}

	recs := Recommend([]types.JobRecord{softwareEngineerJob()}, profile)
	assert.Empty(t, recs)
}

func TestRecommend_SkillsCompareCaseInsensitively(t *testing.T) {
	profile := engineerProfile()
	profile.Skills = []string{" Python ", "SQL"}

	recs := Recommend([]types.JobRecord{softwareEngineerJob()}, profile)
	require.Len(t, recs, 1)
	assert.Equal(t, 15, recs[0].Score)
	assert.Equal(t, []string{"python", "sql"}, recs[0].MatchingSkills)
	assert.Empty(t, recs[0].MissingSkills)
}

func TestRecommend_EmptyInputs(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		recs := Recommend(nil, engineerProfile())
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})

	t.Run("empty skills", func(t *testing.T) {
		profile := engineerProfile()
		profile.Skills = nil
		assert.Empty(t, Recommend([]types.JobRecord{softwareEngineerJob()}, profile))
	})

	t.Run("empty roles", func(t *testing.T) {
		profile := engineerProfile()
		profile.Preferences.DesiredRoles = nil
		assert.Empty(t, Recommend([]types.JobRecord{softwareEngineerJob()}, profile))
	})

	t.Run("blank role does not match everything", func(t *testing.T) {
		profile := engineerProfile()
		profile.Preferences.DesiredRoles = []string{"  "}
		assert.Empty(t, Recommend([]types.JobRecord{softwareEngineerJob()}, profile))
	})

	t.Run("job without skills is excluded", func(t *testing.T) {
		job := softwareEngineerJob()
		job.RequiredSkills = nil
		assert.Empty(t, Recommend([]types.JobRecord{job}, engineerProfile()))
	})
}

func TestRecommend_TruncatesToTopFive(t *testing.T) {
	allSkills := []string{"a", "b", "c", "d", "e", "f"}
	profile := engineerProfile()
	profile.Skills = allSkills

	// Job i shares i+1 skills, so scores are distinct and increase with i
	var catalog []types.JobRecord
	for i := range 6 {
		catalog = append(catalog, types.JobRecord{
			ID:              int64(i + 1),
			Title:           fmt.Sprintf("Engineer %d", i),
			RequiredSkills:  allSkills[:i+1],
			Location:        "Onsite",
			JobType:         types.JobTypeContract,
			ExperienceLevel: types.ExperienceSenior,
		})
	}

	recs := Recommend(catalog, profile)
	require.Len(t, recs, MaxRecommendations)

	assert.Equal(t, int64(6), recs[0].ID)
	assert.Equal(t, 18, recs[0].Score)
	assert.Equal(t, int64(2), recs[4].ID)
	for i := 1; i < len(recs); i++ {
		assert.Greater(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	var catalog []types.JobRecord
	for i := range 7 {
		job := softwareEngineerJob()
		job.ID = int64(i + 1)
		catalog = append(catalog, job)
	}
	// Give the last job a higher score so it jumps ahead of the ties
	catalog[6].RequiredSkills = []string{"python", "go"}

	profile := engineerProfile()
	profile.Skills = []string{"python", "go"}

	recs := Recommend(catalog, profile)
	require.Len(t, recs, MaxRecommendations)

	ids := make([]int64, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	assert.Equal(t, []int64{7, 1, 2, 3, 4}, ids)
}

func TestRecommend_ScoreIsClamped(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	job := softwareEngineerJob()
	job.RequiredSkills = skills

	profile := engineerProfile()
	profile.Skills = skills

	recs := Recommend([]types.JobRecord{job}, profile)
	require.Len(t, recs, 1)
	assert.Equal(t, MaxScore, recs[0].Score)
}

func TestRecommend_Deterministic(t *testing.T) {
	catalog := sampleCatalog()
	profile := engineerProfile()
	profile.Skills = []string{"python", "go", "sql"}

	first := Recommend(catalog, profile)
	second := Recommend(catalog, profile)
	assert.Equal(t, first, second)
}

func TestRecommend_DoesNotMutateCatalog(t *testing.T) {
	catalog := sampleCatalog()
	before := make([]types.JobRecord, len(catalog))
	for i, job := range catalog {
		before[i] = job.Clone()
	}

	recs := Recommend(catalog, engineerProfile())
	for i := range recs {
		if len(recs[i].RequiredSkills) > 0 {
			recs[i].RequiredSkills[0] = "mutated"
		}
	}

	assert.Equal(t, before, catalog)
}

func TestRecommend_Properties(t *testing.T) {
	catalog := sampleCatalog()
	profiles := []types.UserProfile{
		engineerProfile(),
		{
			Skills:          []string{"go", "kubernetes", "sql"},
			Preferences:     types.Preferences{DesiredRoles: []string{"engineer", "developer"}, Locations: []string{"Berlin"}, JobType: types.JobTypeContract},
			ExperienceLevel: types.ExperienceSenior,
		},
		{
			Skills:          []string{"figma"},
			Preferences:     types.Preferences{DesiredRoles: []string{"designer"}, Locations: []string{"Remote"}, JobType: types.JobTypeInternship},
			ExperienceLevel: types.ExperienceEntry,
		},
	}

	for _, profile := range profiles {
		recs := Recommend(catalog, profile)
		index := newProfileIndex(&profile)

		assert.LessOrEqual(t, len(recs), MaxRecommendations)
		assert.LessOrEqual(t, len(recs), len(catalog))

		for i, rec := range recs {
			assert.GreaterOrEqual(t, rec.Score, 0)
			assert.LessOrEqual(t, rec.Score, MaxScore)
			assert.True(t, index.matchesRole(rec.Title), "result %q must match a desired role", rec.Title)
			assert.NotEmpty(t, rec.MatchingSkills, "result %q must share a skill", rec.Title)
			if i > 0 {
				assert.GreaterOrEqual(t, recs[i-1].Score, rec.Score)
				if recs[i-1].Score == rec.Score {
					assert.Less(t, recs[i-1].ID, rec.ID, "ties must keep catalog order")
				}
			}
		}
	}
}

func TestRecommend_MoreSharedSkillsNeverLowersScore(t *testing.T) {
	job := softwareEngineerJob()
	job.RequiredSkills = []string{"python", "sql", "go", "docker"}

	profile := engineerProfile()
	last := 0
	for _, skill := range []string{"sql", "go", "docker"} {
		recs := Recommend([]types.JobRecord{job}, profile)
		require.Len(t, recs, 1)
		assert.GreaterOrEqual(t, recs[0].Score, last)
		last = recs[0].Score
		profile.Skills = append(profile.Skills, skill)
	}
}

// sampleCatalog has ascending IDs so catalog order equals ID order.
func sampleCatalog() []types.JobRecord {
	return []types.JobRecord{
		{ID: 1, Title: "Software Engineer", Company: "Acme", RequiredSkills: []string{"python", "sql"}, Location: "Remote", JobType: types.JobTypeFullTime, ExperienceLevel: types.ExperienceMid},
		{ID: 2, Title: "Backend Developer", Company: "Globex", RequiredSkills: []string{"go", "sql", "kubernetes"}, Location: "Berlin", JobType: types.JobTypeContract, ExperienceLevel: types.ExperienceSenior},
		{ID: 3, Title: "Data Engineer", Company: "Initech", RequiredSkills: []string{"python", "spark"}, Location: "London", JobType: types.JobTypeFullTime, ExperienceLevel: types.ExperienceEntry},
		{ID: 4, Title: "Product Designer", Company: "Umbrella", RequiredSkills: []string{"figma"}, Location: "Remote", JobType: types.JobTypeInternship, ExperienceLevel: types.ExperienceEntry},
		{ID: 5, Title: "Platform Engineer", Company: "Hooli", RequiredSkills: []string{"go", "kubernetes", "terraform"}, Location: "Berlin", JobType: types.JobTypeFullTime, ExperienceLevel: types.ExperienceSenior},
		{ID: 6, Title: "ML Engineer", Company: "Pied Piper", RequiredSkills: []string{"python"}, Location: "Remote", JobType: types.JobTypePartTime, ExperienceLevel: types.ExperienceMid},
		{ID: 7, Title: "Engineering Manager", Company: "Acme", RequiredSkills: []string{}, Location: "Remote", JobType: types.JobTypeFullTime, ExperienceLevel: types.ExperienceSenior},
		{ID: 8, Title: "QA Engineer", Company: "Vandelay", RequiredSkills: []string{"python", "selenium"}, Location: "Remote", JobType: types.JobTypeFullTime, ExperienceLevel: types.ExperienceMid},
	}
}
