package handler

import (
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/fullstacklab/itemsvc/internal/service"
)

// Handlers is the container grouping all HTTP handlers, so router setup
// receives a single wired object.
type Handlers struct {
	Health      *HealthHandler
	Items       *ItemsHandler
	Departments *DepartmentsHandler
	Employees   *EmployeesHandler
}

// NewHandlers constructs the handler container from the application
// container and the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Items:       NewItemsHandler(s, services),
		Departments: NewDepartmentsHandler(s, services),
		Employees:   NewEmployeesHandler(s, services),
	}
}
