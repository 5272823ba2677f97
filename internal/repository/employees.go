package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeesRepository persists employees. Reads resolve the department
// name through a LEFT JOIN so an unset or dangling reference renders as
// "Unknown" instead of failing.
type EmployeesRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeesRepository constructs an EmployeesRepository on the shared
// pool.
func NewEmployeesRepository(s *server.Server) *EmployeesRepository {
	return &EmployeesRepository{pool: s.DB.Pool}
}

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var emp model.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.ZipCode,
		&emp.DepartmentID, &emp.DepartmentName, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Create inserts a new employee. A non-nil departmentID referencing a
// missing department surfaces as a foreign key violation, which the
// error funnel reports as a 400.
func (r *EmployeesRepository) Create(ctx context.Context, firstName, lastName, zipCode string, departmentID *int64) (*model.Employee, error) {
	emp, err := scanEmployee(r.pool.QueryRow(ctx,
		`WITH inserted AS (
		     INSERT INTO employees (first_name, last_name, zip_code, department_id)
		     VALUES ($1, $2, $3, $4)
		     RETURNING id, first_name, last_name, zip_code, department_id, created_at, updated_at
		 )
		 SELECT i.id, i.first_name, i.last_name, i.zip_code, i.department_id,
		        COALESCE(d.name, 'Unknown'), i.created_at, i.updated_at
		 FROM inserted i
		 LEFT JOIN departments d ON d.id = i.department_id`,
		firstName, lastName, zipCode, departmentID,
	))
	if err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}
	return emp, nil
}

// List returns all employees with resolved department names, newest
// first with an id tie-break.
func (r *EmployeesRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.first_name, e.last_name, e.zip_code, e.department_id,
		        COALESCE(d.name, 'Unknown'), e.created_at, e.updated_at
		 FROM employees e
		 LEFT JOIN departments d ON d.id = e.department_id
		 ORDER BY e.created_at DESC, e.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	emps, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Employee])
	if err != nil {
		return nil, fmt.Errorf("scanning employees: %w", err)
	}
	return emps, nil
}

// GetByID returns the employee with the given id, or a NotFound error.
func (r *EmployeesRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	emp, err := scanEmployee(r.pool.QueryRow(ctx,
		`SELECT e.id, e.first_name, e.last_name, e.zip_code, e.department_id,
		        COALESCE(d.name, 'Unknown'), e.created_at, e.updated_at
		 FROM employees e
		 LEFT JOIN departments d ON d.id = e.department_id
		 WHERE e.id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NewNotFoundError("Employee not found", true, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("getting employee %d: %w", id, err)
	}
	return emp, nil
}

// Update applies a partial update; nil fields keep their current value.
// The department reference can only be changed, not cleared, through
// this operation.
func (r *EmployeesRepository) Update(ctx context.Context, id int64, firstName, lastName, zipCode *string, departmentID *int64) (*model.Employee, error) {
	emp, err := scanEmployee(r.pool.QueryRow(ctx,
		`WITH updated AS (
		     UPDATE employees
		     SET first_name = COALESCE($2, first_name),
		         last_name = COALESCE($3, last_name),
		         zip_code = COALESCE($4, zip_code),
		         department_id = COALESCE($5, department_id),
		         updated_at = now()
		     WHERE id = $1
		     RETURNING id, first_name, last_name, zip_code, department_id, created_at, updated_at
		 )
		 SELECT u.id, u.first_name, u.last_name, u.zip_code, u.department_id,
		        COALESCE(d.name, 'Unknown'), u.created_at, u.updated_at
		 FROM updated u
		 LEFT JOIN departments d ON d.id = u.department_id`,
		id, firstName, lastName, zipCode, departmentID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NewNotFoundError("Employee not found", true, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("updating employee %d: %w", id, err)
	}
	return emp, nil
}

// Delete removes the employee and reports whether a row was deleted.
func (r *EmployeesRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting employee %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
