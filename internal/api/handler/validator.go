package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator with the domain tags registered:
//   - field_of_interest: a FieldOfInterest label or alias
//   - education_level:   an EducationLevel label or alias
//   - user_role:         candidate, organizer or one of their aliases
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("field_of_interest", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseField(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("education_level", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseLevel(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRole(fl.Field().String())
		return ok
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "field_of_interest":
		return field + " must be a known field of interest"
	case "education_level":
		return field + " must be a known education level"
	case "user_role":
		return field + " must be candidate or organizer"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
