package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError([]FieldError{{Field: "name", Error: "is required"}})

	if err.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.Status)
	}
	if err.Code != ValidationErrorCode {
		t.Errorf("expected code %s, got %s", ValidationErrorCode, err.Code)
	}
	if !err.Override {
		t.Error("validation errors must be safe to display")
	}
	if len(err.Errors) != 1 || err.Errors[0].Field != "name" {
		t.Errorf("unexpected field errors %+v", err.Errors)
	}
}

func TestNewNotFoundErrorDefaultCode(t *testing.T) {
	err := NewNotFoundError("Item not found", true, nil)

	if err.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.Status)
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "ITEM_ALREADY_EXISTS"
	err := NewBadRequestError("duplicate", true, &code, nil)

	if err.Code != code {
		t.Errorf("expected %s, got %s", code, err.Code)
	}
}

func TestHTTPErrorIsAcrossWraps(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewInternalServerError())

	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("expected errors.Is to match any *HTTPError through wraps")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected errors.As to find the HTTPError")
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Status)
	}
}

func TestWithMessage(t *testing.T) {
	base := NewNotFoundError("Item not found", true, nil)
	changed := base.WithMessage("Department not found")

	if changed.Message != "Department not found" {
		t.Errorf("unexpected message %q", changed.Message)
	}
	if base.Message != "Item not found" {
		t.Error("WithMessage must not mutate the original")
	}
	if changed.Status != base.Status || changed.Code != base.Code {
		t.Error("WithMessage must only replace the message")
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := map[string]string{
		"Bad Request":           "BAD_REQUEST",
		"Not Found":             "NOT_FOUND",
		"Internal Server Error": "INTERNAL_SERVER_ERROR",
	}
	for in, want := range tests {
		if got := MakeUpperCaseWithUnderscores(in); got != want {
			t.Errorf("MakeUpperCaseWithUnderscores(%q) = %q, want %q", in, got, want)
		}
	}
}
