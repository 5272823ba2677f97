// Package validation validates request payloads.
//
// Request types implement Validatable (usually by running
// go-playground/validator over their struct tags); BindAndValidate binds
// the incoming request into the payload and converts validation failures
// into field-level errors the client can act on. Malformed JSON becomes
// a 400, never a silent default.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue that cannot
// be expressed through validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds the request into payload (body, path and query
// params) and validates it. payload must be a pointer so echo's Bind can
// populate it. Failures come back as *errs.HTTPError with status 400.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		// echo wraps bind failures in its own HTTPError; surface its
		// message when present instead of parsing the error text.
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if msg, ok := echoErr.Message.(string); ok && msg != "" {
				return errs.NewBadRequestError(msg, false, nil, nil)
			}
		}
		return errs.NewBadRequestError("Malformed request payload", false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator.ValidationErrors (or our
// custom errors) into client-facing field errors with readable messages.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, custom := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: custom.Field,
				Error: custom.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{
			{Field: "request", Error: err.Error()},
		}
	}

	for _, fieldErr := range validationErrors {
		field := snakeCase(fieldErr.Field())
		var msg string

		switch fieldErr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fieldErr.Param())
			}

		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fieldErr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fieldErr.Param())

		case "gte":
			msg = fmt.Sprintf("must be at least %s", fieldErr.Param())

		default:
			if fieldErr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fieldErr.Tag(), fieldErr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fieldErr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

// snakeCase converts a Go field name like "FirstName" into the wire
// field name "first_name".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
