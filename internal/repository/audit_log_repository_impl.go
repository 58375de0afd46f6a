package repository

import (
	"context"
	"errors"

	"medical-office-api/internal/domain/entity"
	domainRepo "medical-office-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Create(log).Error
}

// FindAll returns the newest entries first together with the number of
// entries matching the filter.
func (r *auditLogRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	var logs []entity.AuditLog
	var total int64

	matching := func(tx *gorm.DB) *gorm.DB {
		if filter == nil {
			return tx
		}
		if filter.Action != "" {
			tx = tx.Where("action = ?", filter.Action)
		}
		if filter.Entity != "" {
			tx = tx.Where("metadata->>'entity' = ?", filter.Entity)
		}
		if filter.EntityID != "" {
			tx = tx.Where("metadata->>'entity_id' = ?", filter.EntityID)
		}
		if filter.ActorRole != "" {
			tx = tx.Where("actor_role = ?", filter.ActorRole)
		}
		if filter.ActorID > 0 {
			tx = tx.Where("actor_id = ?", filter.ActorID)
		}
		return tx
	}

	if err := db.WithContext(ctx).Model(&entity.AuditLog{}).Scopes(matching).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).Scopes(matching).Order("created_at DESC, id DESC")
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
