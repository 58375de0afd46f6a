package usecase

import (
	"context"
	"errors"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"
	"medical-office-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPractitionerNotFound    = errors.New("practitioner not found")
	ErrPractitionerEmailExists = errors.New("a practitioner with this email already exists")
	ErrPractitionerPhoneExists = errors.New("a practitioner with this phone number already exists")
)

type PractitionerUsecase interface {
	CreatePractitioner(ctx context.Context, req *dto.PractitionerRequest) (*dto.PractitionerResponse, error)
	GetPractitioner(ctx context.Context, id int) (*dto.PractitionerResponse, error)
	GetAllPractitioners(ctx context.Context) ([]dto.PractitionerResponse, error)
	UpdatePractitioner(ctx context.Context, id int, req *dto.PractitionerRequest) (*dto.PractitionerResponse, error)
	DeletePractitioner(ctx context.Context, id int) error
}

type practitionerUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	practitionerRepo repository.PractitionerRepository
	auditService     service.AuditService
}

func NewPractitionerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practitionerRepo repository.PractitionerRepository,
	auditService service.AuditService,
) PractitionerUsecase {
	return &practitionerUsecase{
		db:               db,
		log:              log,
		practitionerRepo: practitionerRepo,
		auditService:     auditService,
	}
}

func (u *practitionerUsecase) CreatePractitioner(ctx context.Context, req *dto.PractitionerRequest) (*dto.PractitionerResponse, error) {
	practitioner := &entity.Practitioner{}
	converter.ApplyPractitionerRequest(practitioner, req)

	if err := u.practitionerRepo.Create(ctx, u.db, practitioner); err != nil {
		if mapped := practitionerConflict(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to create practitioner: %+v", err)
		return nil, err
	}

	return converter.PractitionerToResponse(practitioner), nil
}

func (u *practitionerUsecase) GetPractitioner(ctx context.Context, id int) (*dto.PractitionerResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find practitioner: %+v", err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	return converter.PractitionerToResponse(practitioner), nil
}

func (u *practitionerUsecase) GetAllPractitioners(ctx context.Context) ([]dto.PractitionerResponse, error) {
	practitioners, err := u.practitionerRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all practitioners: %+v", err)
		return nil, err
	}

	return converter.PractitionersToResponses(practitioners), nil
}

func (u *practitionerUsecase) UpdatePractitioner(ctx context.Context, id int, req *dto.PractitionerRequest) (*dto.PractitionerResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find practitioner: %+v", err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	converter.ApplyPractitionerRequest(practitioner, req)
	if err := u.practitionerRepo.Update(ctx, u.db, practitioner); err != nil {
		if mapped := practitionerConflict(err); mapped != nil {
			return nil, mapped
		}
		u.log.Warnf("Failed to update practitioner: %+v", err)
		return nil, err
	}

	return converter.PractitionerToResponse(practitioner), nil
}

func (u *practitionerUsecase) DeletePractitioner(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	practitioner, err := u.practitionerRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find practitioner: %+v", err)
		return err
	}
	if practitioner == nil {
		return ErrPractitionerNotFound
	}

	if _, err := u.practitionerRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete practitioner: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionPractitionerDelete, "practitioner", id, converter.PractitionerToResponse(practitioner)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func practitionerConflict(err error) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrPractitionerEmailExists
	case isDuplicateKeyError(err, "phone"):
		return ErrPractitionerPhoneExists
	}
	return nil
}
