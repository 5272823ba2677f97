// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/fullstacklab/itemsvc/internal/handler"
	"github.com/fullstacklab/itemsvc/internal/middleware"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the echo instance: global middleware first, then the
// system and entity route groups. Echo's own logger and banner are
// disabled since all logging flows through zerolog.
func New(s *server.Server, mw *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()

	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Global.CORS())
	r.Use(mw.Global.RequestLogger())
	r.Use(mw.Global.Recover())
	r.Use(mw.Global.Secure())

	registerSystemRoutes(r, h)
	registerItemRoutes(r, h)
	registerDepartmentRoutes(r, h)
	registerEmployeeRoutes(r, h)

	return r
}
