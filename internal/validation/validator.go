// Package validation provides helper functions for request data validation.
// It uses the go-playground/validator library and includes custom validation rules.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/YusovID/skillswap/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
	idRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// init registers the custom tags used by the request types in pkg/api.
func init() {
	rules := map[string]validator.Func{
		// custom_id keeps ids to letters, digits, hyphens and underscores.
		// Empty strings are left to the 'required' tag.
		"custom_id": func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			return v == "" || idRegexp.MatchString(v)
		},
		"proficiency": func(fl validator.FieldLevel) bool {
			return domain.ProficiencyLevel(fl.Field().String()).IsValid()
		},
		"skill_type": func(fl validator.FieldLevel) bool {
			return domain.SkillType(fl.Field().String()).IsValid()
		},
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register custom validation %q: %v", tag, err))
		}
	}
}

// ValidationError holds one user-facing message per failed field.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateStruct checks s against its validate tags and returns a *ValidationError on failure.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Errors: []string{err.Error()}}
	}

	messages := make([]string, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}

	return &ValidationError{Errors: messages}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "custom_id":
		return fmt.Sprintf("field '%s' must contain only letters, numbers, hyphens, and underscores", fe.Field())
	case "proficiency":
		return fmt.Sprintf("field '%s' must be one of beginner, intermediate, advanced, expert", fe.Field())
	case "skill_type":
		return fmt.Sprintf("field '%s' must be either offered or wanted", fe.Field())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}
