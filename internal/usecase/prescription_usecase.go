package usecase

import (
	"context"
	"errors"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescriptions(ctx context.Context, consultationID int) ([]dto.PrescriptionResponse, error)
	UpdatePrescription(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, id int) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
}

func NewPrescriptionUsecase(db *gorm.DB, log *logrus.Logger, prescriptionRepo repository.PrescriptionRepository) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
	}
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescribedOn, err := converter.ParseDate(req.PrescribedOn)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	prescription := &entity.Prescription{
		ConsultationID: req.ConsultationID,
		Type:           req.Type,
		Dosage:         req.Dosage,
		PrescribedOn:   prescribedOn,
	}

	if err := u.prescriptionRepo.Create(ctx, u.db, prescription); err != nil {
		if isForeignKeyError(err, "consultation") {
			return nil, ErrInvalidReference
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetPrescriptions(ctx context.Context, consultationID int) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(ctx, u.db, consultationID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions), nil
}

func (u *prescriptionUsecase) UpdatePrescription(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescribedOn, err := converter.ParseDate(req.PrescribedOn)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	prescription.Type = req.Type
	prescription.Dosage = req.Dosage
	prescription.PrescribedOn = prescribedOn

	if err := u.prescriptionRepo.Update(ctx, u.db, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, id int) error {
	affected, err := u.prescriptionRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}
	return nil
}
