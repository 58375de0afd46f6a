package usecase

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"medical-office-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTxDB returns a gorm handle over sqlmock. Usecase tests use it for the
// BEGIN/COMMIT/ROLLBACK expectations while the fakes below hold the data.
func newTxDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Appointments

type fakeAppointmentRepo struct {
	rows      map[int]entity.Appointment
	nextID    int
	updates   int
	updateErr error
}

func newFakeAppointmentRepo(appointments ...entity.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{rows: map[int]entity.Appointment{}, nextID: 1}
	for _, a := range appointments {
		r.rows[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = r.nextID
	r.nextID++
	r.rows[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	return r.FindByID(ctx, db, id)
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateColumns(ctx context.Context, db *gorm.DB, id int, columns map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if len(columns) == 0 {
		return nil
	}
	r.updates++

	a := r.rows[id]
	for column, value := range columns {
		switch column {
		case "patient_id":
			a.PatientID = value.(int)
		case "practitioner_id":
			a.PractitionerID = value.(int)
		case "scheduled_at":
			a.ScheduledAt = value.(time.Time)
		case "status":
			a.Status = value.(entity.AppointmentStatus)
		case "parent_id":
			if value == nil {
				a.ParentID = nil
			} else {
				parentID := value.(int)
				a.ParentID = &parentID
			}
		}
	}
	r.rows[id] = a
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeAppointmentRepo) CountByStatus(ctx context.Context, db *gorm.DB) (map[entity.AppointmentStatus]int64, error) {
	counts := map[entity.AppointmentStatus]int64{}
	for _, a := range r.rows {
		counts[a.Status]++
	}
	return counts, nil
}

// Consultations

type fakeConsultationRepo struct {
	rows      []entity.Consultation
	createErr error
	lastQuery *entity.ConsultationFilter
}

func (r *fakeConsultationRepo) forAppointment(appointmentID int) []entity.Consultation {
	var out []entity.Consultation
	for _, c := range r.rows {
		if c.AppointmentID == appointmentID {
			out = append(out, c)
		}
	}
	return out
}

func (r *fakeConsultationRepo) Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	if r.createErr != nil {
		return r.createErr
	}
	consultation.ID = len(r.rows) + 1
	r.rows = append(r.rows, *consultation)
	return nil
}

func (r *fakeConsultationRepo) CreateAutoGenerated(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) (bool, error) {
	if r.createErr != nil {
		return false, r.createErr
	}
	if len(r.forAppointment(consultation.AppointmentID)) > 0 {
		return false, nil
	}
	consultation.ID = len(r.rows) + 1
	r.rows = append(r.rows, *consultation)
	return true, nil
}

func (r *fakeConsultationRepo) ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error) {
	return len(r.forAppointment(appointmentID)) > 0, nil
}

func (r *fakeConsultationRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Consultation, error) {
	for _, c := range r.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeConsultationRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Consultation, error) {
	return r.rows, nil
}

func (r *fakeConsultationRepo) Search(ctx context.Context, db *gorm.DB, filter *entity.ConsultationFilter) ([]entity.Consultation, error) {
	r.lastQuery = filter
	return r.rows, nil
}

func (r *fakeConsultationRepo) Update(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	for i := range r.rows {
		if r.rows[i].ID == consultation.ID {
			r.rows[i] = *consultation
		}
	}
	return nil
}

func (r *fakeConsultationRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeConsultationRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(r.rows)), nil
}

// Audit

type auditEntry struct {
	action   string
	entityID int
}

type fakeAuditService struct {
	entries []auditEntry
	err     error
}

func (s *fakeAuditService) record(action string, entityID int) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, auditEntry{action: action, entityID: entityID})
	return nil
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, newValue interface{}) error {
	return s.record(action, entityID)
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue, newValue interface{}) error {
	return s.record(action, entityID)
}

func (s *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, oldValue interface{}) error {
	return s.record(action, entityID)
}

func (s *fakeAuditService) actions() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.action
	}
	return out
}
