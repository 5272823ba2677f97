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

// DepartmentsRepository persists departments. The table mirrors items
// structurally, so the queries follow the same shape.
type DepartmentsRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentsRepository constructs a DepartmentsRepository on the
// shared pool.
func NewDepartmentsRepository(s *server.Server) *DepartmentsRepository {
	return &DepartmentsRepository{pool: s.DB.Pool}
}

const departmentColumns = "id, name, description, created_at, updated_at"

func scanDepartment(row pgx.Row) (*model.Department, error) {
	var dep model.Department
	err := row.Scan(&dep.ID, &dep.Name, &dep.Description, &dep.CreatedAt, &dep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

// Create inserts a new department and returns it with the assigned id
// and timestamps.
func (r *DepartmentsRepository) Create(ctx context.Context, name, description string) (*model.Department, error) {
	dep, err := scanDepartment(r.pool.QueryRow(ctx,
		`INSERT INTO departments (name, description)
		 VALUES ($1, $2)
		 RETURNING `+departmentColumns,
		name, description,
	))
	if err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}
	return dep, nil
}

// List returns all departments, newest first with an id tie-break.
func (r *DepartmentsRepository) List(ctx context.Context) ([]model.Department, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+departmentColumns+`
		 FROM departments
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	defer rows.Close()

	deps, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.Department])
	if err != nil {
		return nil, fmt.Errorf("scanning departments: %w", err)
	}
	return deps, nil
}

// GetByID returns the department with the given id, or a NotFound error.
func (r *DepartmentsRepository) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	dep, err := scanDepartment(r.pool.QueryRow(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE id = $1`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NewNotFoundError("Department not found", true, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("getting department %d: %w", id, err)
	}
	return dep, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *DepartmentsRepository) Update(ctx context.Context, id int64, name, description *string) (*model.Department, error) {
	dep, err := scanDepartment(r.pool.QueryRow(ctx,
		`UPDATE departments
		 SET name = COALESCE($2, name),
		     description = COALESCE($3, description),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+departmentColumns,
		id, name, description,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NewNotFoundError("Department not found", true, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("updating department %d: %w", id, err)
	}
	return dep, nil
}

// Delete removes the department and reports whether a row was deleted.
// Employees referencing it keep existing with a null department
// (ON DELETE SET NULL).
func (r *DepartmentsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting department %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
