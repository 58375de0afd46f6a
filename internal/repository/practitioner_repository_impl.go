package repository

import (
	"context"
	"errors"

	"medical-office-api/internal/domain/entity"
	domainRepo "medical-office-api/internal/domain/repository"

	"gorm.io/gorm"
)

type practitionerRepository struct{}

func NewPractitionerRepository() domainRepo.PractitionerRepository {
	return &practitionerRepository{}
}

func (r *practitionerRepository) Create(ctx context.Context, db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.WithContext(ctx).Create(practitioner).Error
}

func (r *practitionerRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Practitioner, error) {
	var practitioner entity.Practitioner
	err := db.WithContext(ctx).Where("id = ?", id).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practitioner, nil
}

func (r *practitionerRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Practitioner, error) {
	var practitioners []entity.Practitioner
	if err := db.WithContext(ctx).Order("last_name ASC").Find(&practitioners).Error; err != nil {
		return nil, err
	}
	return practitioners, nil
}

func (r *practitionerRepository) Update(ctx context.Context, db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.WithContext(ctx).Save(practitioner).Error
}

func (r *practitionerRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Practitioner{})
	return result.RowsAffected, result.Error
}

func (r *practitionerRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Practitioner{}).Count(&count).Error
	return count, err
}
