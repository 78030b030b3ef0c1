package employee

import "context"

type EmployeeRepository interface {
	GetByMatricule(ctx context.Context, matricule string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Delete(ctx context.Context, matricule string) error
}
