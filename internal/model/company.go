package model

import "time"

// Department groups employees. It follows the same CRUD contract as Item.
type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Employee belongs to at most one department. DepartmentID is nullable;
// DepartmentName is resolved at read time and falls back to "Unknown"
// when the reference is unset.
type Employee struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	ZipCode        string    `json:"zip_code"`
	DepartmentID   *int64    `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UnknownDepartment is the display name for an unresolved department
// reference.
const UnknownDepartment = "Unknown"
