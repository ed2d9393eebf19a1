// Package validate checks input structs with struct tags and reports
// failures as *domain.ValidationError keyed by JSON field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/learnhub/internal/domain"
)

const notBlankTag = "notblank"

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// JSON tag names in errors instead of Go field names.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = val.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		switch f := fl.Field(); f.Kind() {
		case reflect.String:
			return strings.TrimSpace(f.String()) != ""
		default:
			return !f.IsZero()
		}
	})
	return val
}

// Struct validates s and returns nil or a *domain.ValidationError.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", notBlankTag:
		return "required"
	case "max":
		if fe.Kind() == reflect.String {
			return "max " + fe.Param() + " characters"
		}
		return "max " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "min " + fe.Param() + " characters"
		}
		return "min " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "invalid email"
	case "url", "http_url":
		return "invalid url"
	case "oneof":
		return "must be one of " + fe.Param()
	case "e164":
		return "invalid phone number"
	default:
		return "invalid"
	}
}
