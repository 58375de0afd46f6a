package usecase

import (
	"context"
	"testing"

	"medical-office-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	db, mock := newTxDB(t)
	uc := NewStatsUsecase(db, newTestLogger(),
		repository.NewPatientRepository(),
		repository.NewPractitionerRepository(),
		repository.NewAppointmentRepository(),
		repository.NewConsultationRepository(),
		repository.NewPrescriptionRepository(),
		repository.NewExamRepository(),
		repository.NewUserRepository(),
		repository.NewAdminRepository(),
	)

	count := func(n int) *sqlmock.Rows { return sqlmock.NewRows([]string{"count"}).AddRow(n) }
	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).WillReturnRows(count(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "practitioners"`).WillReturnRows(count(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "consultations"`).WillReturnRows(count(8))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "prescriptions"`).WillReturnRows(count(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "exams"`).WillReturnRows(count(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "admins"`).WillReturnRows(count(1))
	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS total FROM "appointments" GROUP BY`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
			AddRow("en_attente", 4).
			AddRow("confirme", 6))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnRows(count(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE is_approved`).WillReturnRows(count(2))

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.Patients)
	assert.Equal(t, int64(3), stats.Practitioners)
	assert.Equal(t, int64(10), stats.Appointments)
	assert.Equal(t, map[string]int64{"en_attente": 4, "confirme": 6}, stats.ByStatus)
	assert.Equal(t, int64(8), stats.Consultations)
	assert.Equal(t, int64(7), stats.Users)
	assert.Equal(t, int64(2), stats.PendingUsers)
	assert.Equal(t, int64(1), stats.Admins)
	assert.NoError(t, mock.ExpectationsWereMet())
}
