package employee

import (
	"context"
)

// EmployeeService defines the employee operations exposed to the
// presentation layer.
type EmployeeService interface {
	// AddEmployee inserts a new record, deriving an avatar when none is given
	AddEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// UpdateEmployee merges the patch over the stored record. Returns
	// ErrEmployeeNotFound (and changes nothing) when the id is unknown.
	UpdateEmployee(ctx context.Context, id string, patch UpdateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes the record. Leave requests referencing the id
	// are left in place.
	DeleteEmployee(ctx context.Context, id string) (Employee, error)

	// GetEmployeeByID returns the record or ErrEmployeeNotFound
	GetEmployeeByID(ctx context.Context, id string) (Employee, error)

	// ListEmployees returns all records in insertion order
	ListEmployees(ctx context.Context) []Employee

	// GetEmployeesByDepartment filters by exact department match, order-preserving
	GetEmployeesByDepartment(ctx context.Context, department string) []Employee

	// ActiveEmployeesCount counts records with status "active", recomputed per call
	ActiveEmployeesCount(ctx context.Context) int

	// DepartmentsCount counts distinct department values, recomputed per call
	DepartmentsCount(ctx context.Context) int
}
