package dto

import (
	"time"

	"medical-office-api/internal/domain/entity"
)

// AuditLogListQuery carries the filters of GET /audit-logs.
type AuditLogListQuery struct {
	Action    string
	Entity    string
	EntityID  int
	ActorRole string
	ActorID   int
	Page      int
	Limit     int
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	ActorID   *int        `json:"actor_id,omitempty"`
	ActorRole string      `json:"actor_role,omitempty"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity,omitempty"`
	EntityID  string      `json:"entity_id,omitempty"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Page  int                `json:"-"`
	Limit int                `json:"-"`
	Total int64              `json:"total"`
}
