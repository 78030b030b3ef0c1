package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/leave"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	id, matricule, nom_complet, departement, type, motif, date_debut, date_fin, created_at, updated_at
`

func scanLeaveRow(row pgx.Row) (leave.Record, error) {
	var rec leave.Record
	err := row.Scan(
		&rec.ID, &rec.Matricule, &rec.NomComplet, &rec.Departement,
		&rec.Kind, &rec.Motif, &rec.DateDebut, &rec.DateFin,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// List implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Record, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE ($1 = '' OR matricule = $1)
			AND ($2 = '' OR departement = $2)
			AND ($3 = '' OR type = $3)
		ORDER BY date_debut DESC
	`

	rows, err := q.Query(ctx, query, filter.Matricule, filter.Departement, string(filter.Kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		rec, err := scanLeaveRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Record, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_records
		WHERE id = $1
	`

	rec, err := scanLeaveRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Record{}, leave.ErrRecordNotFound
		}
		return leave.Record{}, fmt.Errorf("failed to get leave record %s: %w", id, err)
	}
	return rec, nil
}

// Create implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Create(ctx context.Context, rec leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_records (matricule, nom_complet, departement, type, motif, date_debut, date_fin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveColumns

	created, err := scanLeaveRow(q.QueryRow(ctx, query,
		rec.Matricule, rec.NomComplet, rec.Departement,
		string(rec.Kind), rec.Motif, rec.DateDebut, rec.DateFin,
	))
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to insert leave record: %w", err)
	}
	return created, nil
}

// Delete implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		DELETE FROM leave_records
		WHERE id = $1
		RETURNING id
	`

	var deleted string
	if err := q.QueryRow(ctx, query, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete leave record %s: %w", id, err)
	}
	return nil
}
