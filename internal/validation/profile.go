package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/jonathan/job-recommender/internal/types"
)

var profileValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "jobtype", func(fl validator.FieldLevel) bool {
		return types.JobType(fl.Field().String()).Valid()
	})
	mustRegister(v, "explevel", func(fl validator.FieldLevel) bool {
		return types.ExperienceLevel(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ValidateProfile checks that every field the ranking engine relies on is present and that
// the job type and experience level are known values. It returns a *ValidationError
// listing every problem, or nil.
func ValidateProfile(profile *types.UserProfile) error {
	if profile == nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "is required"}}}
	}

	err := profileValidator.Struct(profile)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate profile: %w", err)
	}

	result := &ValidationError{Errors: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		result.Errors = append(result.Errors, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return result
}

// fieldPath drops the struct name from a validator namespace, e.g.
// "UserProfile.preferences.job_type" becomes "preferences.job_type".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must contain at least one entry"
	case "notblank":
		return "must not be blank"
	case "jobtype":
		return fmt.Sprintf("must be one of: %s", joinValues(types.JobTypes))
	case "explevel":
		return fmt.Sprintf("must be one of: %s", joinValues(types.ExperienceLevels))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
