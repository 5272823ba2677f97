// Package errs defines the error types returned to API clients.
//
// Every error that crosses the HTTP boundary is shaped as an HTTPError:
// a machine-checkable code, a human-readable message, an HTTP status and
// optional field-level details. Handlers and services return these;
// the global error handler serializes them.
package errs
