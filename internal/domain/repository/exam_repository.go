package repository

import (
	"context"

	"medical-office-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(ctx context.Context, db *gorm.DB, exam *entity.Exam) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Exam, error)
	FindAll(ctx context.Context, db *gorm.DB, consultationID int) ([]entity.Exam, error)
	Update(ctx context.Context, db *gorm.DB, exam *entity.Exam) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
