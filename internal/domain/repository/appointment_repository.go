package repository

import (
	"context"

	"medical-office-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id int, columns map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	CountByStatus(ctx context.Context, db *gorm.DB) (map[entity.AppointmentStatus]int64, error)
}
