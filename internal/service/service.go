// Package service contains the business rules between the handler and
// repository layers.
//
// Services own the store contract for each entity: field validation
// (trimmed minimum lengths), partial-update semantics and delete
// idempotence. They depend on repository interfaces so tests can
// substitute in-memory fakes for the PostgreSQL-backed implementations.
package service
