package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	matricule, nom, prenom, telephone, lieu_habitation, departement, image_path, created_at, updated_at
`

func scanEmployeeRow(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.Matricule, &emp.Nom, &emp.Prenom, &emp.Telephone,
		&emp.LieuHabitation, &emp.Departement, &emp.ImagePath,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByMatricule implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByMatricule(ctx context.Context, matricule string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE matricule = $1
	`

	emp, err := scanEmployeeRow(q.QueryRow(ctx, query, matricule))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", matricule, err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1 = '' OR departement = $1)
		ORDER BY nom, prenom
	`

	rows, err := q.Query(ctx, query, filter.Departement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context, filter employee.ListFilter) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COUNT(*)
		FROM employees
		WHERE ($1 = '' OR departement = $1)
	`

	var count int
	if err := q.QueryRow(ctx, query, filter.Departement).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (matricule, nom, prenom, telephone, lieu_habitation, departement, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployeeRow(q.QueryRow(ctx, query,
		newEmployee.Matricule, newEmployee.Nom, newEmployee.Prenom,
		newEmployee.Telephone, newEmployee.LieuHabitation,
		newEmployee.Departement, newEmployee.ImagePath,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}
	return created, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, matricule string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		DELETE FROM employees
		WHERE matricule = $1
		RETURNING matricule
	`

	var deleted string
	if err := q.QueryRow(ctx, query, matricule).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee %s: %w", matricule, err)
	}
	return nil
}
