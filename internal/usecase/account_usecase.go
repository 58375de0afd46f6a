package usecase

import (
	"context"
	"errors"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"
	"medical-office-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAdminEmailExists  = errors.New("an admin with this email already exists")
	ErrAdminLimitReached = errors.New("maximum number of administrators reached")
	ErrLastAdmin         = errors.New("the last administrator cannot be deleted")
	ErrUserNotApproved   = errors.New("only approved users can be promoted")
)

// AccountUsecase covers the administration of user and admin accounts.
type AccountUsecase interface {
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetPendingUsers(ctx context.Context) ([]dto.UserResponse, error)
	ApproveUser(ctx context.Context, id int) error
	DeleteUser(ctx context.Context, id int) error

	GetAllAdmins(ctx context.Context) ([]dto.AdminResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error)
	UpdateAdmin(ctx context.Context, id int, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error)
	DeleteAdmin(ctx context.Context, id int) error
	PromoteUser(ctx context.Context, req *dto.PromoteUserRequest) (*dto.AdminResponse, error)

	// SeedAdmin creates the first administrator when none exists. It reports
	// whether an account was created.
	SeedAdmin(ctx context.Context, email, password string) (bool, error)
}

type accountUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	adminRepo    repository.AdminRepository
	auditService service.AuditService
	tokenStore   *service.TokenStore
}

func NewAccountUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	auditService service.AuditService,
	tokenStore *service.TokenStore,
) AccountUsecase {
	return &accountUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		auditService: auditService,
		tokenStore:   tokenStore,
	}
}

func (u *accountUsecase) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}

func (u *accountUsecase) GetPendingUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindPending(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find pending users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}

func (u *accountUsecase) ApproveUser(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	affected, err := u.userRepo.Approve(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to approve user: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionUserApprove, "user", id,
		map[string]bool{"is_approved": false}, map[string]bool{"is_approved": true}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *accountUsecase) DeleteUser(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err := u.userRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionUserDelete, "user", id, converter.UserToResponse(user)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.revokeAll(ctx, entity.RoleUser, id)
	return nil
}

func (u *accountUsecase) GetAllAdmins(ctx context.Context) ([]dto.AdminResponse, error) {
	admins, err := u.adminRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all admins: %+v", err)
		return nil, err
	}
	return converter.AdminsToResponses(admins), nil
}

func (u *accountUsecase) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	if err := u.checkAdminCapacity(ctx, tx); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	admin := &entity.Admin{
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := u.adminRepo.Create(ctx, tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrAdminEmailExists
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionAdminCreate, "admin", admin.ID, converter.AdminToResponse(admin)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdminToResponse(admin), nil
}

func (u *accountUsecase) UpdateAdmin(ctx context.Context, id int, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	before := converter.AdminToResponse(admin)
	if req.Email != "" {
		admin.Email = req.Email
	}
	passwordChanged := req.Password != ""
	if passwordChanged {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		admin.Password = string(hashedPassword)
	}

	if err := u.adminRepo.Update(ctx, tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrAdminEmailExists
		}
		u.log.Warnf("Failed to update admin: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionAdminUpdate, "admin", id, before, converter.AdminToResponse(admin)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if passwordChanged {
		u.revokeAll(ctx, entity.RoleAdmin, id)
	}
	return converter.AdminToResponse(admin), nil
}

func (u *accountUsecase) DeleteAdmin(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	if err := u.adminRepo.LockTable(ctx, tx); err != nil {
		u.log.Warnf("Failed to lock admins table: %+v", err)
		return err
	}

	admin, err := u.adminRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	count, err := u.adminRepo.Count(ctx, tx)
	if err != nil {
		u.log.Warnf("Failed to count admins: %+v", err)
		return err
	}
	if count <= 1 {
		return ErrLastAdmin
	}

	if _, err := u.adminRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete admin: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionAdminDelete, "admin", id, converter.AdminToResponse(admin)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.revokeAll(ctx, entity.RoleAdmin, id)
	return nil
}

// PromoteUser moves an approved user into the admins table, keeping the
// password hash. The user's tokens are revoked since the account id changes.
func (u *accountUsecase) PromoteUser(ctx context.Context, req *dto.PromoteUserRequest) (*dto.AdminResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	if err := u.checkAdminCapacity(ctx, tx); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(ctx, tx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsApproved {
		return nil, ErrUserNotApproved
	}

	admin := &entity.Admin{
		Email:    user.Email,
		Password: user.Password,
	}
	if err := u.adminRepo.Create(ctx, tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrAdminEmailExists
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, err
	}

	if _, err := u.userRepo.Delete(ctx, tx, user.ID); err != nil {
		u.log.Warnf("Failed to delete promoted user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionAdminPromote, "admin", admin.ID,
		converter.UserToResponse(user), converter.AdminToResponse(admin)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.revokeAll(ctx, entity.RoleUser, user.ID)
	return converter.AdminToResponse(admin), nil
}

func (u *accountUsecase) SeedAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return false, tx.Error
	}
	defer tx.Rollback()

	if err := u.adminRepo.LockTable(ctx, tx); err != nil {
		u.log.Warnf("Failed to lock admins table: %+v", err)
		return false, err
	}

	count, err := u.adminRepo.Count(ctx, tx)
	if err != nil {
		u.log.Warnf("Failed to count admins: %+v", err)
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return false, err
	}

	admin := &entity.Admin{Email: email, Password: string(hashedPassword)}
	if err := u.adminRepo.Create(ctx, tx, admin); err != nil {
		u.log.Warnf("Failed to create admin: %+v", err)
		return false, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionAdminCreate, "admin", admin.ID, converter.AdminToResponse(admin)); err != nil {
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}
	return true, nil
}

// checkAdminCapacity locks the admins table for the rest of the transaction
// and fails when the cap is reached.
func (u *accountUsecase) checkAdminCapacity(ctx context.Context, tx *gorm.DB) error {
	if err := u.adminRepo.LockTable(ctx, tx); err != nil {
		u.log.Warnf("Failed to lock admins table: %+v", err)
		return err
	}

	count, err := u.adminRepo.Count(ctx, tx)
	if err != nil {
		u.log.Warnf("Failed to count admins: %+v", err)
		return err
	}
	if count >= entity.MaxAdmins {
		return ErrAdminLimitReached
	}
	return nil
}

// revokeAll runs after commit; a failure only delays revocation until the
// tokens expire, so it is logged rather than returned.
func (u *accountUsecase) revokeAll(ctx context.Context, role string, id int) {
	if err := u.tokenStore.RevokeAll(ctx, role, id); err != nil {
		u.log.Warnf("Failed to revoke tokens of %s %d: %+v", role, id, err)
	}
}
