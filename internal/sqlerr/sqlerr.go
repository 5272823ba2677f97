// Package sqlerr translates database driver errors into application
// errors.
//
// It maps raw SQLSTATE codes from PostgreSQL into a small enum of
// violation categories and turns them into user-friendly HTTPErrors, so
// clients see "A department with this name already exists" instead of a
// driver message.
package sqlerr

import (
	"errors"
	"fmt"
)

// Code categorizes database errors into the violations the application
// cares about. Everything else is Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionFailure
)

// Severity mirrors PostgreSQL's error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// Error is a normalized database error carrying the mapped category plus
// the metadata PostgreSQL reports about the failing statement.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("database error %s: %s", e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ErrCode reports the mapped Code for err, or Other if err is not a
// *sqlerr.Error anywhere in its chain.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// MapCode maps a PostgreSQL SQLSTATE to a Code.
//
// SQLSTATE class 23 holds integrity constraint violations; class 08 is
// connection failures.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps PostgreSQL's severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	}
	return SeverityUnknown
}
