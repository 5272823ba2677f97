package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func handleAsHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(HandleError(err), &httpErr) {
		t.Fatalf("expected *errs.HTTPError from HandleError, got %T", err)
	}
	return httpErr
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Item not found", true, nil)

	if got := HandleError(original); got != original {
		t.Errorf("HTTPError must pass through untouched, got %v", got)
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "items",
		ConstraintName: "items_name_key",
	}

	httpErr := handleAsHTTPError(t, err)

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "ITEM_ALREADY_EXISTS" {
		t.Errorf("unexpected code %q", httpErr.Code)
	}
	if httpErr.Message != "A Item with this Name already exists" {
		t.Errorf("unexpected message %q", httpErr.Message)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "employees",
		ColumnName: "department_id",
	}

	httpErr := handleAsHTTPError(t, err)

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "EMPLOYEE_NOT_FOUND" {
		t.Errorf("unexpected code %q", httpErr.Code)
	}
	if httpErr.Message != "The referenced Department does not exist" {
		t.Errorf("unexpected message %q", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "name",
	}

	httpErr := handleAsHTTPError(t, err)

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "name" || httpErr.Errors[0].Error != "is required" {
		t.Errorf("unexpected field errors %+v", httpErr.Errors)
	}
}

func TestHandleErrorConnectionFailure(t *testing.T) {
	err := &pgconn.PgError{Code: "08006", Severity: "FATAL"}

	httpErr := handleAsHTTPError(t, err)
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("connection failures must surface as 500, got %d", httpErr.Status)
	}
	if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("driver detail must not leak, got %q", httpErr.Message)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := handleAsHTTPError(t, fmt.Errorf("get item: %w", pgx.ErrNoRows))

	if httpErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Status)
	}
	if httpErr.Message != "Resource not found" {
		t.Errorf("unexpected message %q", httpErr.Message)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := handleAsHTTPError(t, errors.New("boom"))

	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Status)
	}
}
