package usecase

import (
	"context"
	"errors"
	"strconv"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound   = errors.New("audit log not found")
	ErrUnknownAuditAction = errors.New("unknown audit action")
	ErrUnknownActorRole   = errors.New("unknown actor role")
)

// AuditLogUsecase reads the audit trail written by the lifecycle manager and
// the account and record deletions.
type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// ListAuditLogs pages through the trail, newest first. The history of one
// record is selected with entity plus entity id, e.g. appointment 42.
func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) (*dto.AuditLogListResponse, error) {
	if query.Action != "" && !entity.IsKnownAuditAction(query.Action) {
		return nil, ErrUnknownAuditAction
	}
	if query.ActorRole != "" && query.ActorRole != entity.RoleAdmin && query.ActorRole != entity.RoleUser {
		return nil, ErrUnknownActorRole
	}

	page, limit, offset := normalizePage(query.Page, query.Limit)
	filter := &entity.AuditLogFilter{
		Action:    query.Action,
		Entity:    query.Entity,
		ActorRole: query.ActorRole,
		ActorID:   query.ActorID,
		Limit:     limit,
		Offset:    offset,
	}
	if query.EntityID > 0 {
		filter.EntityID = strconv.Itoa(query.EntityID)
	}

	logs, total, err := u.auditLogRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
