package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fullstacklab/itemsvc/internal/errs"
)

// MinNameLength is the minimum length of a name field after trimming
// surrounding whitespace.
const MinNameLength = 2

// validateName trims value and checks the minimum length rule shared by
// every name-like field. It returns the trimmed value, which is what
// gets persisted so whitespace-only names can never reach the database.
func validateName(field, value string) (string, *errs.FieldError) {
	trimmed := strings.TrimSpace(value)
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return "", &errs.FieldError{
			Field: field,
			Error: fmt.Sprintf("must be at least %d characters", MinNameLength),
		}
	}
	return trimmed, nil
}
