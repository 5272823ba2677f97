package handler

import (
	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/fullstacklab/itemsvc/internal/service"
	"github.com/labstack/echo/v4"
)

// DepartmentsHandler exposes the department CRUD endpoints. The contract
// is identical to items.
type DepartmentsHandler struct {
	Handler
	service *service.DepartmentService
}

// NewDepartmentsHandler constructs a DepartmentsHandler.
func NewDepartmentsHandler(s *server.Server, services *service.Services) *DepartmentsHandler {
	return &DepartmentsHandler{
		Handler: NewHandler(s),
		service: services.Departments,
	}
}

// CreateDepartmentRequest is the payload for POST /departments.
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	return validate.Struct(r)
}

// ListDepartmentsRequest is the (empty) payload for GET /departments.
type ListDepartmentsRequest struct{}

func (r *ListDepartmentsRequest) Validate() error {
	return nil
}

// GetDepartmentRequest binds the id path parameter.
type GetDepartmentRequest struct {
	ID int64 `param:"id"`
}

func (r *GetDepartmentRequest) Validate() error {
	return nil
}

// UpdateDepartmentRequest is the payload for PUT /departments/:id with
// partial-update semantics.
type UpdateDepartmentRequest struct {
	ID          int64   `param:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	return nil
}

// DeleteDepartmentRequest binds the id path parameter.
type DeleteDepartmentRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteDepartmentRequest) Validate() error {
	return nil
}

// DepartmentResponse is the wire representation of a department.
type DepartmentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// NewDepartmentResponse serializes a department for the wire.
func NewDepartmentResponse(dep *model.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dep.ID,
		Name:        dep.Name,
		Description: dep.Description,
		CreatedAt:   formatTimestamp(dep.CreatedAt),
		UpdatedAt:   formatTimestamp(dep.UpdatedAt),
	}
}

// Create handles POST /departments.
func (h *DepartmentsHandler) Create(c echo.Context, req *CreateDepartmentRequest) (DepartmentResponse, error) {
	dep, err := h.service.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return NewDepartmentResponse(dep), nil
}

// List handles GET /departments.
func (h *DepartmentsHandler) List(c echo.Context, _ *ListDepartmentsRequest) ([]DepartmentResponse, error) {
	deps, err := h.service.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	responses := make([]DepartmentResponse, 0, len(deps))
	for i := range deps {
		responses = append(responses, NewDepartmentResponse(&deps[i]))
	}
	return responses, nil
}

// Get handles GET /departments/:id.
func (h *DepartmentsHandler) Get(c echo.Context, req *GetDepartmentRequest) (DepartmentResponse, error) {
	dep, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return NewDepartmentResponse(dep), nil
}

// Update handles PUT /departments/:id.
func (h *DepartmentsHandler) Update(c echo.Context, req *UpdateDepartmentRequest) (DepartmentResponse, error) {
	dep, err := h.service.Update(c.Request().Context(), req.ID, req.Name, req.Description)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return NewDepartmentResponse(dep), nil
}

// Delete handles DELETE /departments/:id.
func (h *DepartmentsHandler) Delete(c echo.Context, req *DeleteDepartmentRequest) (DeleteResponse, error) {
	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return DeleteResponse{}, err
	}
	if !deleted {
		return DeleteResponse{}, errs.NewNotFoundError("Department not found", true, nil)
	}

	return DeleteResponse{
		Message: "Department deleted",
		ID:      req.ID,
	}, nil
}
