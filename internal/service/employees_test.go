package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/rs/zerolog"
)

// fakeEmployeeRepo mirrors the production join semantics: the
// department name is resolved on every read and falls back to
// "Unknown" when the reference is unset or dangling.
type fakeEmployeeRepo struct {
	employees   map[int64]model.Employee
	departments map[int64]string
	nextID      int64
	now         time.Time
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees:   make(map[int64]model.Employee),
		departments: make(map[int64]string),
		now:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeEmployeeRepo) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeEmployeeRepo) resolve(emp model.Employee) model.Employee {
	emp.DepartmentName = model.UnknownDepartment
	if emp.DepartmentID != nil {
		if name, ok := f.departments[*emp.DepartmentID]; ok {
			emp.DepartmentName = name
		}
	}
	return emp
}

func (f *fakeEmployeeRepo) Create(_ context.Context, firstName, lastName, zipCode string, departmentID *int64) (*model.Employee, error) {
	f.nextID++
	ts := f.tick()
	emp := model.Employee{
		ID:           f.nextID,
		FirstName:    firstName,
		LastName:     lastName,
		ZipCode:      zipCode,
		DepartmentID: departmentID,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	f.employees[emp.ID] = emp
	resolved := f.resolve(emp)
	return &resolved, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, f.resolve(emp))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, errs.NewNotFoundError("Employee not found", true, nil)
	}
	resolved := f.resolve(emp)
	return &resolved, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id int64, firstName, lastName, zipCode *string, departmentID *int64) (*model.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, errs.NewNotFoundError("Employee not found", true, nil)
	}
	if firstName != nil {
		emp.FirstName = *firstName
	}
	if lastName != nil {
		emp.LastName = *lastName
	}
	if zipCode != nil {
		emp.ZipCode = *zipCode
	}
	if departmentID != nil {
		emp.DepartmentID = departmentID
	}
	emp.UpdatedAt = f.tick()
	f.employees[id] = emp
	resolved := f.resolve(emp)
	return &resolved, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.employees[id]; !ok {
		return false, nil
	}
	delete(f.employees, id)
	return true, nil
}

func newTestEmployeeService(repo EmployeeRepository) *EmployeeService {
	nop := zerolog.Nop()
	return NewEmployeeService(&nop, repo)
}

func int64Ptr(v int64) *int64 { return &v }

func TestEmployeeServiceCreateWithoutDepartment(t *testing.T) {
	svc := newTestEmployeeService(newFakeEmployeeRepo())

	emp, err := svc.Create(context.Background(), "Ada", "Lovelace", "10115", nil)
	if err != nil {
		t.Fatal(err)
	}

	if emp.DepartmentID != nil {
		t.Error("expected nil department reference")
	}
	if emp.DepartmentName != model.UnknownDepartment {
		t.Errorf("expected department name %q, got %q", model.UnknownDepartment, emp.DepartmentName)
	}
}

func TestEmployeeServiceCreateResolvesDepartmentName(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.departments[7] = "Engineering"
	svc := newTestEmployeeService(repo)

	emp, err := svc.Create(context.Background(), "Ada", "Lovelace", "", int64Ptr(7))
	if err != nil {
		t.Fatal(err)
	}
	if emp.DepartmentName != "Engineering" {
		t.Errorf("expected resolved department name, got %q", emp.DepartmentName)
	}
}

func TestEmployeeServiceCreateCollectsFieldErrors(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestEmployeeService(repo)

	_, err := svc.Create(context.Background(), " ", "x", "", nil)
	httpErr := asHTTPError(t, err)

	if httpErr.Code != errs.ValidationErrorCode {
		t.Errorf("expected code %s, got %s", errs.ValidationErrorCode, httpErr.Code)
	}
	if len(httpErr.Errors) != 2 {
		t.Fatalf("expected both name fields reported, got %+v", httpErr.Errors)
	}
	if httpErr.Errors[0].Field != "first_name" || httpErr.Errors[1].Field != "last_name" {
		t.Errorf("unexpected field errors %+v", httpErr.Errors)
	}
	if len(repo.employees) != 0 {
		t.Error("rejected create must not persist anything")
	}
}

func TestEmployeeServiceUpdatePartial(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.departments[3] = "Sales"
	svc := newTestEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ada", "Lovelace", "10115", nil)
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(ctx, created.ID, nil, nil, nil, int64Ptr(3))
	if err != nil {
		t.Fatal(err)
	}

	if updated.FirstName != "Ada" || updated.LastName != "Lovelace" || updated.ZipCode != "10115" {
		t.Errorf("absent fields must be preserved, got %+v", updated)
	}
	if updated.DepartmentName != "Sales" {
		t.Errorf("expected resolved department name after update, got %q", updated.DepartmentName)
	}
}

func TestEmployeeServiceUpdateValidatesNames(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ada", "Lovelace", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Update(ctx, created.ID, strPtr(""), nil, nil, nil)
	httpErr := asHTTPError(t, err)
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "first_name" {
		t.Errorf("expected a field error on first_name, got %+v", httpErr.Errors)
	}
}

func TestEmployeeServiceDeleteIdempotent(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ada", "Lovelace", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected first delete to succeed, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted {
		t.Error("expected repeated delete to report false")
	}
}
