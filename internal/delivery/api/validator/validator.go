// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/studio"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the studio's custom tags registered:
// surface, presentation, item_type and step.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("surface", func(fl validator.FieldLevel) bool {
		return entity.Surface(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("presentation", func(fl validator.FieldLevel) bool {
		return entity.PresentationType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("item_type", func(fl validator.FieldLevel) bool {
		return entity.ItemType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("step", func(fl validator.FieldLevel) bool {
		return studio.Step(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate checks i and flattens field errors into one readable message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fe.Field() + " failed on '" + fe.Tag() + "'"
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		msgs = append(msgs, msg)
	}

	return errors.New(strings.Join(msgs, "; "))
}
