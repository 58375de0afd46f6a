package repository

import (
	"context"

	"medical-office-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error
	// CreateAutoGenerated inserts the consultation unless the appointment
	// already has one. It reports whether a row was written.
	CreateAutoGenerated(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) (bool, error)
	ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Consultation, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Consultation, error)
	Search(ctx context.Context, db *gorm.DB, filter *entity.ConsultationFilter) ([]entity.Consultation, error)
	Update(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
