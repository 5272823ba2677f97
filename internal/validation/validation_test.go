package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var testValidator = validator.New()

type signupPayload struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name" validate:"required,min=2"`
	Role  string `json:"role" validate:"omitempty,oneof=admin member"`
}

func (p *signupPayload) Validate() error {
	return testValidator.Struct(p)
}

func jsonContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := jsonContext(`{"email":"ada@example.com","name":"Ada"}`)

	var payload signupPayload
	if err := BindAndValidate(c, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Email != "ada@example.com" || payload.Name != "Ada" {
		t.Errorf("unexpected payload %+v", payload)
	}
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := jsonContext(`{"email":`)

	var payload signupPayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Status)
	}
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := jsonContext(`{"name":"x","role":"root"}`)

	var payload signupPayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Message != "Validation failed" {
		t.Errorf("unexpected message %q", httpErr.Message)
	}

	byField := make(map[string]string, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}

	if byField["email"] != "is required" {
		t.Errorf("unexpected email error %q", byField["email"])
	}
	if byField["name"] != "must be at least 2 characters" {
		t.Errorf("unexpected name error %q", byField["name"])
	}
	if byField["role"] != "must be one of: admin member" {
		t.Errorf("unexpected role error %q", byField["role"])
	}
}

func TestExtractValidationErrorCustom(t *testing.T) {
	err := CustomValidationErrors{
		{Field: "department_id", Message: "does not exist"},
	}

	msg, fieldErrors := extractValidationError(err)
	if msg != "Validation failed" {
		t.Errorf("unexpected message %q", msg)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "department_id" || fieldErrors[0].Error != "does not exist" {
		t.Errorf("unexpected field errors %+v", fieldErrors)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":      "name",
		"FirstName": "first_name",
		"ZipCode":   "zip_code",
		"email":     "email",
	}
	for in, want := range tests {
		if got := snakeCase(in); got != want {
			t.Errorf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
