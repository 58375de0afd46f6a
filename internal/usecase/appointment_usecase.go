package usecase

import (
	"context"
	"errors"
	"fmt"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"
	"medical-office-api/internal/infrastructure/metrics"
	"medical-office-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidReference    = errors.New("referenced patient, practitioner or appointment does not exist")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int, patch entity.AppointmentPatch) error
	DeleteAppointment(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
	metrics          *metrics.AppointmentMetrics
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
	appointmentMetrics *metrics.AppointmentMetrics,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		consultationRepo: consultationRepo,
		auditService:     auditService,
		metrics:          appointmentMetrics,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := converter.ParseTimestamp(req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	status := entity.AppointmentStatusPending
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
	}

	appointment := &entity.Appointment{
		PatientID:      req.PatientID,
		PractitionerID: req.PractitionerID,
		ScheduledAt:    scheduledAt,
		Status:         status,
		ParentID:       req.ParentID,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		if isForeignKeyError(err, "patient") || isForeignKeyError(err, "practitioner") || isForeignKeyError(err, "parent") {
			return nil, ErrInvalidReference
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// UpdateAppointment merges the patch into the stored appointment. When the
// resulting status is confirmed and the appointment has no consultation yet,
// one is created from the schedule. Everything happens in one transaction
// with the appointment row locked, so concurrent confirmations serialize and
// any failure leaves the store untouched.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, patch entity.AppointmentPatch) error {
	if err := patch.Validate(); err != nil {
		u.metrics.ObserveUpdate(metrics.ResultInvalid)
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return u.failUpdate("begin transaction", tx.Error)
	}
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		return u.failUpdate("lock appointment", err)
	}
	if appointment == nil {
		u.metrics.ObserveUpdate(metrics.ResultNotFound)
		return ErrAppointmentNotFound
	}

	before := *appointment
	changes := appointment.Apply(patch)
	if err := u.appointmentRepo.UpdateColumns(ctx, tx, id, changes); err != nil {
		return u.failUpdate("update appointment", err)
	}

	var created *entity.Consultation
	if appointment.IsConfirmed() {
		exists, err := u.consultationRepo.ExistsForAppointment(ctx, tx, id)
		if err != nil {
			return u.failUpdate("check consultation", err)
		}
		if !exists {
			consultation := entity.NewAutoConsultation(appointment)
			inserted, err := u.consultationRepo.CreateAutoGenerated(ctx, tx, consultation)
			if err != nil {
				return u.failUpdate("create consultation", err)
			}
			if inserted {
				created = consultation
			}
		}
	}

	if len(changes) > 0 {
		if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentUpdate, "appointment", id, before, changes); err != nil {
			return u.failUpdate("audit appointment update", err)
		}
	}
	if created != nil {
		if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionConsultationAutoCreate, "consultation", created.ID, created); err != nil {
			return u.failUpdate("audit consultation", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return u.failUpdate("commit transaction", err)
	}

	u.metrics.ObserveUpdate(metrics.ResultUpdated)
	if created != nil {
		u.metrics.ObserveAutoConsultation()
		u.log.WithFields(logrus.Fields{
			"appointment_id":  id,
			"consultation_id": created.ID,
		}).Info("Consultation created from confirmed appointment")
	}

	return nil
}

// failUpdate logs a storage failure of UpdateAppointment and classifies it.
func (u *appointmentUsecase) failUpdate(op string, err error) error {
	u.metrics.ObserveUpdate(metrics.ResultError)
	u.log.Warnf("Failed to %s: %+v", op, err)
	if isConstraintError(err) {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return err
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if _, err := u.appointmentRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionAppointmentDelete, "appointment", id, converter.AppointmentToResponse(appointment)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
