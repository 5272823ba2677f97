package service

import (
	"context"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/rs/zerolog"
)

// EmployeeRepository is the persistence contract for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, firstName, lastName, zipCode string, departmentID *int64) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	Update(ctx context.Context, id int64, firstName, lastName, zipCode *string, departmentID *int64) (*model.Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EmployeeService carries the store contract for employees. Name fields
// follow the same trimmed minimum-length rule as items; the zip code and
// department reference are optional.
type EmployeeService struct {
	repo   EmployeeRepository
	logger *zerolog.Logger
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(logger *zerolog.Logger, repo EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		logger: logger,
	}
}

// Create persists a new employee. Both name fields are validated; a
// department reference pointing at a missing department is rejected by
// the database's foreign key and surfaces as a bad request.
func (s *EmployeeService) Create(ctx context.Context, firstName, lastName, zipCode string, departmentID *int64) (*model.Employee, error) {
	var fieldErrors []errs.FieldError

	trimmedFirst, fieldErr := validateName("first_name", firstName)
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	trimmedLast, fieldErr := validateName("last_name", lastName)
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	if len(fieldErrors) > 0 {
		return nil, errs.NewValidationError(fieldErrors)
	}

	emp, err := s.repo.Create(ctx, trimmedFirst, trimmedLast, zipCode, departmentID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("employee_id", emp.ID).Msg("employee created")
	return emp, nil
}

// List returns all employees sorted by creation time descending, with
// department names resolved ("Unknown" when unset).
func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.List(ctx)
}

// Get returns the employee with the given id or a NotFound error.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*model.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update; nil fields keep their stored value.
// Provided name fields are validated like on Create.
func (s *EmployeeService) Update(ctx context.Context, id int64, firstName, lastName, zipCode *string, departmentID *int64) (*model.Employee, error) {
	var fieldErrors []errs.FieldError

	if firstName != nil {
		trimmed, fieldErr := validateName("first_name", *firstName)
		if fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		} else {
			firstName = &trimmed
		}
	}
	if lastName != nil {
		trimmed, fieldErr := validateName("last_name", *lastName)
		if fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		} else {
			lastName = &trimmed
		}
	}
	if len(fieldErrors) > 0 {
		return nil, errs.NewValidationError(fieldErrors)
	}

	emp, err := s.repo.Update(ctx, id, firstName, lastName, zipCode, departmentID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("employee_id", emp.ID).Msg("employee updated")
	return emp, nil
}

// Delete removes the employee and reports whether a row was deleted.
func (s *EmployeeService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Debug().Int64("employee_id", id).Msg("employee deleted")
	}
	return deleted, nil
}
