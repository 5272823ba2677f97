package repository

import (
	"github.com/fullstacklab/itemsvc/internal/server"
)

// Repositories is the container for all repository instances, built once
// and handed to the service layer.
type Repositories struct {
	Items       *ItemsRepository
	Departments *DepartmentsRepository
	Employees   *EmployeesRepository
}

// NewRepositories constructs every repository against the shared
// connection pool on the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items:       NewItemsRepository(s),
		Departments: NewDepartmentsRepository(s),
		Employees:   NewEmployeesRepository(s),
	}
}
