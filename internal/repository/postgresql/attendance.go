package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, matricule, nom_complet, departement, date,
	heure_arrivee, heure_depart, signature, created_at, updated_at
`

func scanAttendanceRow(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.Matricule, &rec.NomComplet, &rec.Departement, &rec.Date,
		&rec.HeureArrivee, &rec.HeureDepart, &rec.Signature, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (a *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...any) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendanceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date = $1
		ORDER BY heure_arrivee
	`
	return a.queryRecords(ctx, query, date)
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByMonth(ctx context.Context, month time.Time, matricule, departement string) ([]attendance.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE date_trunc('month', date) = date_trunc('month', $1::date)
			AND ($2 = '' OR matricule = $2)
			AND ($3 = '' OR departement = $3)
		ORDER BY date, heure_arrivee
	`
	return a.queryRecords(ctx, query, month, matricule, departement)
}

// ListByMatriculeRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByMatriculeRange(ctx context.Context, matricule string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE matricule = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`
	return a.queryRecords(ctx, query, matricule, from, to)
}

// GetForDay implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetForDay(ctx context.Context, matricule string, date time.Time) ([]attendance.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE matricule = $1 AND date = $2
		ORDER BY created_at
	`
	return a.queryRecords(ctx, query, matricule, date)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (matricule, nom_complet, departement, date, heure_arrivee, heure_depart, signature)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attendanceColumns

	created, err := scanAttendanceRow(q.QueryRow(ctx, query,
		rec.Matricule, rec.NomComplet, rec.Departement, rec.Date,
		rec.HeureArrivee, rec.HeureDepart, rec.Signature,
	))
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}
	return created, nil
}

// SetDeparture implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) SetDeparture(ctx context.Context, id string, heureDepart string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET heure_depart = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, heureDepart, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to set departure on record %s: %w", id, err)
	}
	return nil
}
