package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"08006", ConnectionFailure},
		{"08001", ConnectionFailure},
		{"42P01", Other},
		{"", Other},
	}

	for _, tt := range tests {
		if got := MapCode(tt.sqlstate); got != tt.want {
			t.Errorf("MapCode(%q) = %v, want %v", tt.sqlstate, got, tt.want)
		}
	}
}

func TestMapSeverity(t *testing.T) {
	if MapSeverity("ERROR") != SeverityError {
		t.Error("ERROR should map to SeverityError")
	}
	if MapSeverity("FATAL") != SeverityFatal {
		t.Error("FATAL should map to SeverityFatal")
	}
	if MapSeverity("NOTICE") != SeverityUnknown {
		t.Error("unknown severities should map to SeverityUnknown")
	}
}

func TestErrCode(t *testing.T) {
	inner := ConvertPgError(&pgconn.PgError{Code: "23505"})
	wrapped := fmt.Errorf("create item: %w", inner)

	if got := ErrCode(wrapped); got != UniqueViolation {
		t.Errorf("ErrCode through a wrap = %v, want UniqueViolation", got)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("ErrCode on a plain error = %v, want Other", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	src := &pgconn.PgError{Code: "23503", Message: "fk violation"}
	err := ConvertPgError(src)

	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		t.Fatal("expected the driver error to remain reachable via errors.As")
	}
	if pgerr != src {
		t.Error("unwrap should yield the original driver error")
	}
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table string
		code  Code
		want  string
	}{
		{"items", UniqueViolation, "ITEM_ALREADY_EXISTS"},
		{"departments", ForeignKeyViolation, "DEPARTMENT_NOT_FOUND"},
		{"employees", NotNullViolation, "EMPLOYEE_REQUIRED"},
		{"items", CheckViolation, "ITEM_INVALID"},
		{"", UniqueViolation, "RECORD_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		if got := generateErrorCode(tt.table, tt.code); got != tt.want {
			t.Errorf("generateErrorCode(%q, %v) = %q, want %q", tt.table, tt.code, got, tt.want)
		}
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"items_name_key":       "name",
		"departments_name_key": "name",
		"unique_items_name":    "name",
		"items_pkey":           "",
		"":                     "",
	}

	for constraint, want := range tests {
		if got := extractColumnForUniqueViolation(constraint); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", constraint, got, want)
		}
	}
}
