package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration test")
	}

	setup, err := NewTestDatabase()
	require.NoError(t, err)
	defer setup.Close()

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	repo := postgresql.NewAttendanceRepository(setup.DB)
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	arrival := "08:15:30"
	provisional := "09:15:30"

	created, err := repo.Create(ctx, attendance.AttendanceRecord{
		Matricule:    "EMP001",
		NomComplet:   "Awa Diop",
		Departement:  "IT",
		Date:         day,
		HeureArrivee: &arrival,
		HeureDepart:  &provisional,
		Signature:    "A1B2C3D4",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	t.Run("GetForDay", func(t *testing.T) {
		records, err := repo.GetForDay(ctx, "EMP001", day)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, arrival, *records[0].HeureArrivee)
	})

	t.Run("SetDeparture", func(t *testing.T) {
		require.NoError(t, repo.SetDeparture(ctx, created.ID, "17:30:00"))

		records, err := repo.ListByDate(ctx, day)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "17:30:00", *records[0].HeureDepart)
	})

	t.Run("SetDeparture unknown id", func(t *testing.T) {
		err := repo.SetDeparture(ctx, "00000000-0000-0000-0000-000000000000", "17:30:00")
		assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
	})

	t.Run("ListByMonth filters", func(t *testing.T) {
		records, err := repo.ListByMonth(ctx, day, "EMP001", "")
		require.NoError(t, err)
		assert.Len(t, records, 1)

		records, err = repo.ListByMonth(ctx, day, "", "RH")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
