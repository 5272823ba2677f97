package service

import (
	"github.com/fullstacklab/itemsvc/internal/repository"
	"github.com/fullstacklab/itemsvc/internal/server"
)

// Services is the container for all business-logic services, built once
// and handed to the handler layer.
type Services struct {
	Items       *ItemService
	Departments *DepartmentService
	Employees   *EmployeeService
}

// NewService constructs every service from the application container and
// the repository container.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Items:       NewItemService(s.Logger, repos.Items),
		Departments: NewDepartmentService(s.Logger, repos.Departments),
		Employees:   NewEmployeeService(s.Logger, repos.Employees),
	}, nil
}
