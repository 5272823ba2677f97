package handler

import (
	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/fullstacklab/itemsvc/internal/service"
	"github.com/labstack/echo/v4"
)

// EmployeesHandler exposes the employee CRUD endpoints.
type EmployeesHandler struct {
	Handler
	service *service.EmployeeService
}

// NewEmployeesHandler constructs an EmployeesHandler.
func NewEmployeesHandler(s *server.Server, services *service.Services) *EmployeesHandler {
	return &EmployeesHandler{
		Handler: NewHandler(s),
		service: services.Employees,
	}
}

// CreateEmployeeRequest is the payload for POST /employees. The
// department reference is optional.
type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	ZipCode      string `json:"zip_code"`
	DepartmentID *int64 `json:"department_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// ListEmployeesRequest is the (empty) payload for GET /employees.
type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error {
	return nil
}

// GetEmployeeRequest binds the id path parameter.
type GetEmployeeRequest struct {
	ID int64 `param:"id"`
}

func (r *GetEmployeeRequest) Validate() error {
	return nil
}

// UpdateEmployeeRequest is the payload for PUT /employees/:id with
// partial-update semantics.
type UpdateEmployeeRequest struct {
	ID           int64   `param:"id"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	ZipCode      *string `json:"zip_code"`
	DepartmentID *int64  `json:"department_id"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return nil
}

// DeleteEmployeeRequest binds the id path parameter.
type DeleteEmployeeRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteEmployeeRequest) Validate() error {
	return nil
}

// EmployeeResponse is the wire representation of an employee. The
// department name is resolved server-side and reads "Unknown" when the
// reference is unset.
type EmployeeResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	ZipCode        string  `json:"zip_code"`
	DepartmentID   *int64  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	CreatedAt      *string `json:"created_at"`
	UpdatedAt      *string `json:"updated_at"`
}

// NewEmployeeResponse serializes an employee for the wire.
func NewEmployeeResponse(emp *model.Employee) EmployeeResponse {
	departmentName := emp.DepartmentName
	if departmentName == "" {
		departmentName = model.UnknownDepartment
	}

	return EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		ZipCode:        emp.ZipCode,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: departmentName,
		CreatedAt:      formatTimestamp(emp.CreatedAt),
		UpdatedAt:      formatTimestamp(emp.UpdatedAt),
	}
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c echo.Context, req *CreateEmployeeRequest) (EmployeeResponse, error) {
	emp, err := h.service.Create(c.Request().Context(), req.FirstName, req.LastName, req.ZipCode, req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return NewEmployeeResponse(emp), nil
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c echo.Context, _ *ListEmployeesRequest) ([]EmployeeResponse, error) {
	emps, err := h.service.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeResponse, 0, len(emps))
	for i := range emps {
		responses = append(responses, NewEmployeeResponse(&emps[i]))
	}
	return responses, nil
}

// Get handles GET /employees/:id.
func (h *EmployeesHandler) Get(c echo.Context, req *GetEmployeeRequest) (EmployeeResponse, error) {
	emp, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return NewEmployeeResponse(emp), nil
}

// Update handles PUT /employees/:id.
func (h *EmployeesHandler) Update(c echo.Context, req *UpdateEmployeeRequest) (EmployeeResponse, error) {
	emp, err := h.service.Update(c.Request().Context(), req.ID, req.FirstName, req.LastName, req.ZipCode, req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return NewEmployeeResponse(emp), nil
}

// Delete handles DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c echo.Context, req *DeleteEmployeeRequest) (DeleteResponse, error) {
	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return DeleteResponse{}, err
	}
	if !deleted {
		return DeleteResponse{}, errs.NewNotFoundError("Employee not found", true, nil)
	}

	return DeleteResponse{
		Message: "Employee deleted",
		ID:      req.ID,
	}, nil
}
