package usecase

import (
	"context"
	"errors"
	"time"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"
	"medical-office-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrInvalidSearchDate    = errors.New("invalid date format, use YYYY-MM-DD")
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, id int) (*dto.ConsultationResponse, error)
	GetAllConsultations(ctx context.Context) ([]dto.ConsultationResponse, error)
	SearchConsultations(ctx context.Context, query *dto.ConsultationSearchQuery) ([]dto.ConsultationResponse, error)
	UpdateConsultation(ctx context.Context, id int, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, id int) error
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	auditService     service.AuditService
	now              func() time.Time
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		auditService:     auditService,
		now:              time.Now,
	}
}

func (u *consultationUsecase) CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	consultedAt := u.now().UTC()
	if req.ConsultedAt != "" {
		parsed, err := converter.ParseTimestamp(req.ConsultedAt)
		if err != nil {
			return nil, err
		}
		consultedAt = parsed
	}

	consultation := &entity.Consultation{
		AppointmentID: req.AppointmentID,
		ConsultedAt:   consultedAt,
		Report:        req.Report,
		Price:         converter.NullPrice(req.Price),
	}

	if err := u.consultationRepo.Create(ctx, u.db, consultation); err != nil {
		if isForeignKeyError(err, "appointment") {
			return nil, ErrInvalidReference
		}
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, id int) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetAllConsultations(ctx context.Context) ([]dto.ConsultationResponse, error) {
	consultations, err := u.consultationRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all consultations: %+v", err)
		return nil, err
	}

	return converter.ConsultationsToResponses(consultations), nil
}

func (u *consultationUsecase) SearchConsultations(ctx context.Context, query *dto.ConsultationSearchQuery) ([]dto.ConsultationResponse, error) {
	if query != nil && query.Date != "" {
		if _, err := time.Parse("2006-01-02", query.Date); err != nil {
			return nil, ErrInvalidSearchDate
		}
	}

	consultations, err := u.consultationRepo.Search(ctx, u.db, converter.SearchQueryToFilter(query))
	if err != nil {
		u.log.Warnf("Failed to search consultations: %+v", err)
		return nil, err
	}

	return converter.ConsultationsToResponses(consultations), nil
}

func (u *consultationUsecase) UpdateConsultation(ctx context.Context, id int, req *dto.UpdateConsultationRequest) (*dto.ConsultationResponse, error) {
	consultedAt, err := converter.ParseTimestamp(req.ConsultedAt)
	if err != nil {
		return nil, err
	}

	consultation, err := u.consultationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	consultation.ConsultedAt = consultedAt
	consultation.Report = req.Report
	consultation.Price = converter.NullPrice(req.Price)

	if err := u.consultationRepo.Update(ctx, u.db, consultation); err != nil {
		u.log.Warnf("Failed to update consultation: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation), nil
}

// DeleteConsultation removes the consultation with its prescriptions and exams.
func (u *consultationUsecase) DeleteConsultation(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	consultation, err := u.consultationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return err
	}
	if consultation == nil {
		return ErrConsultationNotFound
	}

	if _, err := u.consultationRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete consultation: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionConsultationDelete, "consultation", id, converter.ConsultationToResponse(consultation)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
