package service

import (
	"context"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/rs/zerolog"
)

// DepartmentRepository is the persistence contract for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, name, description string) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	Update(ctx context.Context, id int64, name, description *string) (*model.Department, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// DepartmentService mirrors the item store contract for departments.
type DepartmentService struct {
	repo   DepartmentRepository
	logger *zerolog.Logger
}

// NewDepartmentService constructs a DepartmentService.
func NewDepartmentService(logger *zerolog.Logger, repo DepartmentRepository) *DepartmentService {
	return &DepartmentService{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new department under the same trimmed-name rule as
// items.
func (s *DepartmentService) Create(ctx context.Context, name, description string) (*model.Department, error) {
	trimmed, fieldErr := validateName("name", name)
	if fieldErr != nil {
		return nil, errs.NewValidationError([]errs.FieldError{*fieldErr})
	}

	dep, err := s.repo.Create(ctx, trimmed, description)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("department_id", dep.ID).Msg("department created")
	return dep, nil
}

// List returns all departments sorted by creation time descending.
func (s *DepartmentService) List(ctx context.Context) ([]model.Department, error) {
	return s.repo.List(ctx)
}

// Get returns the department with the given id or a NotFound error.
func (s *DepartmentService) Get(ctx context.Context, id int64) (*model.Department, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update; nil fields keep their stored value.
func (s *DepartmentService) Update(ctx context.Context, id int64, name, description *string) (*model.Department, error) {
	if name != nil {
		trimmed, fieldErr := validateName("name", *name)
		if fieldErr != nil {
			return nil, errs.NewValidationError([]errs.FieldError{*fieldErr})
		}
		name = &trimmed
	}

	dep, err := s.repo.Update(ctx, id, name, description)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("department_id", dep.ID).Msg("department updated")
	return dep, nil
}

// Delete removes the department and reports whether a row was deleted.
// Employees referencing it fall back to an unset department.
func (s *DepartmentService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Debug().Int64("department_id", id).Msg("department deleted")
	}
	return deleted, nil
}
