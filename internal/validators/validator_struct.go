package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-car-rental/models"
	"github.com/go-playground/validator"
)

const tagRole = "role"

// StructValidator validates models by their `validate` struct tags.
//
// Besides the built-in tags it knows:
//   - role: the value is one of [models.AllRoles];
//   - credit card expiry: month/year of a [models.CreditCard] not in the past.
type StructValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewStructValidator returns a [Validator] backed by go-playground/validator.
func NewStructValidator() Validator {
	return newStructValidator(time.Now)
}

func newStructValidator(now func() time.Time) *StructValidator {
	v := &StructValidator{
		validate: validator.New(),
		now:      now,
	}

	// registration errors only happen for empty tags or nil funcs
	_ = v.validate.RegisterValidation(tagRole, validateRole)
	v.validate.RegisterStructValidation(v.validateCardExpiry, models.CreditCard{})

	return v
}

// Validate checks obj. When fields are given only those struct fields
// (namespaced relative to obj, e.g. "Parameters.FuelType") are validated.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(validationErrors))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func (v *StructValidator) validateCardExpiry(sl validator.StructLevel) {
	card, ok := sl.Current().Interface().(models.CreditCard)
	if !ok || card.Year == 0 || card.Month == 0 {
		return
	}

	now := v.now()
	if card.Year < now.Year() || (card.Year == now.Year() && card.Month < int(now.Month())) {
		sl.ReportError(card.Month, "Month", "Month", "expired", "")
	}
}

func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).IsValid()
}

func describe(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed on '%s=%s'", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
