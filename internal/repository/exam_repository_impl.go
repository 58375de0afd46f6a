package repository

import (
	"context"
	"errors"

	"medical-office-api/internal/domain/entity"
	domainRepo "medical-office-api/internal/domain/repository"

	"gorm.io/gorm"
)

type examRepository struct{}

func NewExamRepository() domainRepo.ExamRepository {
	return &examRepository{}
}

func (r *examRepository) Create(ctx context.Context, db *gorm.DB, exam *entity.Exam) error {
	return db.WithContext(ctx).Create(exam).Error
}

func (r *examRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Exam, error) {
	var exam entity.Exam
	err := db.WithContext(ctx).Where("id = ?", id).First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAll(ctx context.Context, db *gorm.DB, consultationID int) ([]entity.Exam, error) {
	var exams []entity.Exam
	query := db.WithContext(ctx)
	if consultationID != 0 {
		query = query.Where("consultation_id = ?", consultationID)
	}
	if err := query.Order("id ASC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) Update(ctx context.Context, db *gorm.DB, exam *entity.Exam) error {
	return db.WithContext(ctx).Save(exam).Error
}

func (r *examRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Exam{})
	return result.RowsAffected, result.Error
}

func (r *examRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Exam{}).Count(&count).Error
	return count, err
}
