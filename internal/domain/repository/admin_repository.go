package repository

import (
	"context"

	"medical-office-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Admin, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Admin, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admin, error)
	Update(ctx context.Context, db *gorm.DB, admin *entity.Admin) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	// LockTable blocks concurrent writers to admins until the transaction ends.
	LockTable(ctx context.Context, db *gorm.DB) error
}
