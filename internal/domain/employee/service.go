package employee

import "context"

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// AddEmployee registers a new employee with their reference photo
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees retrieves the company roster, optionally by department
	ListEmployees(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)

	// DeleteEmployee removes an employee and their stored photo
	DeleteEmployee(ctx context.Context, matricule string) error
}
