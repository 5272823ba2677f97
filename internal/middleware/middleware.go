// Package middleware holds the HTTP middleware stack: request
// correlation ids, request-scoped loggers, CORS, request logging, panic
// recovery, secure headers and the global error handler.
package middleware

import (
	"github.com/fullstacklab/itemsvc/internal/server"
)

// Middlewares groups all middleware components so router setup receives
// a single wired object.
type Middlewares struct {
	// Global holds the middleware applied to every route: CORS, request
	// logging, recovery, secure headers, plus the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// carrying request_id, method, path and ip.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
