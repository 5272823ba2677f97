package handler

import (
	"time"

	"github.com/fullstacklab/itemsvc/internal/middleware"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/fullstacklab/itemsvc/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate runs the struct-tag validation for every request type in this
// package.
var validate = validator.New()

// Handler is the base type embedded by concrete handlers so they share
// application dependencies through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine: the
// struct only holds a pointer.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives the bound and validated
// request payload and returns the response body or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// validatablePtr constrains PReq to be *Req implementing Validatable,
// so Handle can allocate a fresh request value per call (sharing one
// bound struct across concurrent requests would race).
type validatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint into an echo.HandlerFunc with the shared
// pipeline: bind + validate the request, execute the endpoint, write the
// JSON response with the given status, and log phase timings along the
// way. Errors are returned to the global error handler for shaping.
func Handle[Req any, PReq validatablePtr[Req], Res any](
	h Handler,
	fn HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Logger()

		logger.Debug().Msg("handling request")

		validationStart := time.Now()
		req := PReq(new(Req))
		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Warn().
				Err(err).
				Dur("validation_duration", time.Since(validationStart)).
				Msg("request validation failed")
			return err
		}
		validationDuration := time.Since(validationStart)

		handlerStart := time.Now()
		result, err := fn(c, req)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			logger.Debug().
				Err(err).
				Dur("handler_duration", handlerDuration).
				Dur("total_duration", time.Since(start)).
				Msg("handler execution failed")
			return err
		}

		logger.Debug().
			Dur("validation_duration", validationDuration).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(status, result)
	}
}
