package usecase

import (
	"context"
	"testing"

	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type capturingAuditLogRepo struct {
	repository.AuditLogRepository
	filter *entity.AuditLogFilter
}

func (r *capturingAuditLogRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	r.filter = filter
	return []entity.AuditLog{{
		ID:     3,
		Action: entity.AuditActionConsultationAutoCreate,
		Metadata: entity.JSON{
			"entity":    "consultation",
			"entity_id": "9",
		},
	}}, 1, nil
}

func TestListAuditLogs_RecordHistory(t *testing.T) {
	repo := &capturingAuditLogRepo{}
	uc := NewAuditLogUsecase(nil, newTestLogger(), repo)

	resp, err := uc.ListAuditLogs(context.Background(), &dto.AuditLogListQuery{
		Entity:   "consultation",
		EntityID: 9,
		Page:     2,
		Limit:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, &entity.AuditLogFilter{Entity: "consultation", EntityID: "9", Limit: 5, Offset: 5}, repo.filter)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, "consultation", resp.Logs[0].Entity)
	assert.Equal(t, "9", resp.Logs[0].EntityID)
}

func TestListAuditLogs_RejectsUnknownFilters(t *testing.T) {
	repo := &capturingAuditLogRepo{}
	uc := NewAuditLogUsecase(nil, newTestLogger(), repo)

	_, err := uc.ListAuditLogs(context.Background(), &dto.AuditLogListQuery{Action: "appointment.confirm"})
	assert.ErrorIs(t, err, ErrUnknownAuditAction)

	_, err = uc.ListAuditLogs(context.Background(), &dto.AuditLogListQuery{ActorRole: "doctor"})
	assert.ErrorIs(t, err, ErrUnknownActorRole)

	assert.Nil(t, repo.filter)
}
