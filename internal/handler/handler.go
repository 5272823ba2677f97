// Package handler is the HTTP boundary: it maps wire-level JSON to
// service operations and service results back to JSON.
//
// Request types carry echo bind tags (json/param) and validator tags;
// response types render entities with RFC 3339 timestamps. Handlers
// never touch SQL and never leak internal errors: everything funnels
// through the errs taxonomy.
package handler
