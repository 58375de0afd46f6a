package usecase

import (
	"context"
	"errors"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"
	"medical-office-api/internal/service"
	"medical-office-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotApproved = errors.New("account is awaiting administrator approval")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, actor entity.Actor, accessTokenID string, req *dto.LogoutRequest) error
	GetCurrentAccount(ctx context.Context, actor entity.Actor) (*dto.AccountResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	adminRepo    repository.AdminRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	tokenStore   *service.TokenStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	tokenStore *service.TokenStore,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		auditService: auditService,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
	}
}

// Register creates an account that cannot log in until an administrator approves it.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionUserRegister, "user", user.ID, converter.UserToResponse(user)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// Read-only, no transaction needed
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsApproved {
		return nil, ErrAccountNotApproved
	}

	tokens, err := u.issueTokens(ctx, entity.RoleUser, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:   converter.UserToResponse(user),
		Tokens: *tokens,
	}, nil
}

func (u *authUsecase) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := u.adminRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find admin by email: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, entity.RoleAdmin, admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Admin:  converter.AdminToResponse(admin),
		Tokens: *tokens,
	}, nil
}

// RefreshToken rotates the pair: the presented refresh token is consumed
// and cannot be used again.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	consumed, err := u.tokenStore.ConsumeRefresh(ctx, claims.Role, claims.AccountID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to consume refresh token: %+v", err)
		return nil, err
	}
	if !consumed {
		return nil, ErrTokenRevoked
	}

	// The account may have been removed or unapproved since the token was issued.
	switch claims.Role {
	case entity.RoleAdmin:
		admin, err := u.adminRepo.FindByID(ctx, u.db, claims.AccountID)
		if err != nil {
			u.log.Warnf("Failed to find admin by ID: %+v", err)
			return nil, err
		}
		if admin == nil {
			return nil, ErrInvalidToken
		}
	case entity.RoleUser:
		user, err := u.userRepo.FindByID(ctx, u.db, claims.AccountID)
		if err != nil {
			u.log.Warnf("Failed to find user by ID: %+v", err)
			return nil, err
		}
		if user == nil || !user.IsApproved {
			return nil, ErrInvalidToken
		}
	default:
		return nil, ErrInvalidToken
	}

	return u.issueTokens(ctx, claims.Role, claims.AccountID, claims.Email)
}

// Logout revokes the current access token, and the refresh token when the
// body carries one that belongs to the same account.
func (u *authUsecase) Logout(ctx context.Context, actor entity.Actor, accessTokenID string, req *dto.LogoutRequest) error {
	var refreshTokenID string
	if req != nil && req.RefreshToken != "" {
		claims, err := u.jwtService.ValidateToken(req.RefreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken &&
			claims.AccountID == actor.ID && claims.Role == actor.Role {
			refreshTokenID = claims.TokenID
		}
	}

	return u.tokenStore.Revoke(ctx, actor.Role, actor.ID, accessTokenID, refreshTokenID)
}

func (u *authUsecase) GetCurrentAccount(ctx context.Context, actor entity.Actor) (*dto.AccountResponse, error) {
	if actor.Role == entity.RoleAdmin {
		admin, err := u.adminRepo.FindByID(ctx, u.db, actor.ID)
		if err != nil {
			u.log.Warnf("Failed to find admin by ID: %+v", err)
			return nil, err
		}
		if admin == nil {
			return nil, ErrUserNotFound
		}
		return &dto.AccountResponse{ID: admin.ID, Email: admin.Email, Role: entity.RoleAdmin}, nil
	}

	user, err := u.userRepo.FindByID(ctx, u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.AccountResponse{ID: user.ID, Email: user.Email, Role: entity.RoleUser}, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, role string, accountID int, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(accountID, role, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(accountID, role, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, role, accountID,
		accessTokenID, u.jwtService.GetAccessExpiry(),
		refreshTokenID, u.jwtService.GetRefreshExpiry(),
	); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
