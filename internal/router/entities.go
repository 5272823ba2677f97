package router

import (
	"net/http"

	"github.com/fullstacklab/itemsvc/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/items")

	g.POST("", handler.Handle(h.Items.Handler, h.Items.Create, http.StatusCreated))
	g.GET("", handler.Handle(h.Items.Handler, h.Items.List, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Items.Handler, h.Items.Get, http.StatusOK))
	g.PUT("/:id", handler.Handle(h.Items.Handler, h.Items.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Items.Handler, h.Items.Delete, http.StatusOK))
}

func registerDepartmentRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/departments")

	g.POST("", handler.Handle(h.Departments.Handler, h.Departments.Create, http.StatusCreated))
	g.GET("", handler.Handle(h.Departments.Handler, h.Departments.List, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Departments.Handler, h.Departments.Get, http.StatusOK))
	g.PUT("/:id", handler.Handle(h.Departments.Handler, h.Departments.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Departments.Handler, h.Departments.Delete, http.StatusOK))
}

func registerEmployeeRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/employees")

	g.POST("", handler.Handle(h.Employees.Handler, h.Employees.Create, http.StatusCreated))
	g.GET("", handler.Handle(h.Employees.Handler, h.Employees.List, http.StatusOK))
	g.GET("/:id", handler.Handle(h.Employees.Handler, h.Employees.Get, http.StatusOK))
	g.PUT("/:id", handler.Handle(h.Employees.Handler, h.Employees.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Employees.Handler, h.Employees.Delete, http.StatusOK))
}
