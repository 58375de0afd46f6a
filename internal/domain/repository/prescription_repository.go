package repository

import (
	"context"

	"medical-office-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Prescription, error)
	// FindAll lists every prescription, or only those of consultationID when it is non-zero.
	FindAll(ctx context.Context, db *gorm.DB, consultationID int) ([]entity.Prescription, error)
	Update(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
