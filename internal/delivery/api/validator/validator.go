// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagCardColor validates a '#' followed by six hex digits.
const TagCardColor = "cardcolor"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the card specific tags registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names rather than Go ones.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	_ = validate.RegisterValidation(TagCardColor, func(fl validator.FieldLevel) bool {
		return entity.IsValidCardColor(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate returns ErrValidationFailed carrying one message per failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be blank", fe.Field())
	case "email":
		return fmt.Sprintf("%s is not a valid email", fe.Field())
	case TagCardColor:
		return fmt.Sprintf("%s must be 6 hex digits prefixed with a #", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}
