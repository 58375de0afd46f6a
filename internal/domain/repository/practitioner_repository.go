package repository

import (
	"context"

	"medical-office-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PractitionerRepository interface {
	Create(ctx context.Context, db *gorm.DB, practitioner *entity.Practitioner) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Practitioner, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Practitioner, error)
	Update(ctx context.Context, db *gorm.DB, practitioner *entity.Practitioner) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
