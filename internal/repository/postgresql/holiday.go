package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/holiday"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// ListByYear implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, description, date_debut, date_fin, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date_debut) = $1 OR EXTRACT(YEAR FROM date_fin) = $1
		ORDER BY date_debut
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var item holiday.Holiday
		if err := rows.Scan(&item.ID, &item.Description, &item.DateDebut, &item.DateFin, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, item)
	}
	return holidays, rows.Err()
}

// FindForDate implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) FindForDate(ctx context.Context, date time.Time) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, description, date_debut, date_fin, created_at
		FROM holidays
		WHERE $1::date BETWEEN date_debut AND date_fin
		LIMIT 1
	`

	var item holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&item.ID, &item.Description, &item.DateDebut, &item.DateFin, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to find holiday: %w", err)
	}
	return item, nil
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (description, date_debut, date_fin)
		VALUES ($1, $2, $3)
		RETURNING id, description, date_debut, date_fin, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, newHoliday.Description, newHoliday.DateDebut, newHoliday.DateFin).
		Scan(&created.ID, &created.Description, &created.DateDebut, &created.DateFin, &created.CreatedAt)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to insert holiday: %w", err)
	}
	return created, nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	query := `
		DELETE FROM holidays
		WHERE id = $1
		RETURNING id
	`

	var deleted string
	if err := q.QueryRow(ctx, query, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday %s: %w", id, err)
	}
	return nil
}
