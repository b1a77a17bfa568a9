//nolint:revive // types is a standard Go package name pattern
package types

// UserProfile is the request body for a recommendation.
type UserProfile struct {
	Name            string          `json:"name,omitempty"`
	Skills          []string        `json:"skills" validate:"required,min=1,dive,notblank"`
	Preferences     Preferences     `json:"preferences"`
	ExperienceLevel ExperienceLevel `json:"experience_level" validate:"required,explevel"`
}

// Preferences holds what the user is looking for in a job.
type Preferences struct {
	DesiredRoles []string `json:"desired_roles" validate:"required,min=1,dive,notblank"`
	Locations    []string `json:"locations" validate:"required,min=1,dive,notblank"`
	JobType      JobType  `json:"job_type" validate:"required,jobtype"`
}
