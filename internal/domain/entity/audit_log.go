package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID   *int      `gorm:"index" json:"actor_id,omitempty"`
	ActorRole string    `gorm:"type:text" json:"actor_role,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionUserRegister           = "user.register"
	AuditActionUserApprove            = "user.approve"
	AuditActionUserDelete             = "user.delete"
	AuditActionAdminCreate            = "admin.create"
	AuditActionAdminUpdate            = "admin.update"
	AuditActionAdminDelete            = "admin.delete"
	AuditActionAdminPromote           = "admin.promote"
	AuditActionAppointmentUpdate      = "appointment.update"
	AuditActionAppointmentDelete      = "appointment.delete"
	AuditActionConsultationAutoCreate = "consultation.auto_create"
	AuditActionConsultationDelete     = "consultation.delete"
	AuditActionPatientDelete          = "patient.delete"
	AuditActionPractitionerDelete     = "practitioner.delete"
)

var auditActions = map[string]struct{}{
	AuditActionUserRegister:           {},
	AuditActionUserApprove:            {},
	AuditActionUserDelete:             {},
	AuditActionAdminCreate:            {},
	AuditActionAdminUpdate:            {},
	AuditActionAdminDelete:            {},
	AuditActionAdminPromote:           {},
	AuditActionAppointmentUpdate:      {},
	AuditActionAppointmentDelete:      {},
	AuditActionConsultationAutoCreate: {},
	AuditActionConsultationDelete:     {},
	AuditActionPatientDelete:          {},
	AuditActionPractitionerDelete:     {},
}

// IsKnownAuditAction reports whether action is one of the actions the
// application records.
func IsKnownAuditAction(action string) bool {
	_, ok := auditActions[action]
	return ok
}

// AuditLogFilter narrows the audit trail. Entity and EntityID match the
// "entity" and "entity_id" keys of the metadata.
type AuditLogFilter struct {
	Action    string
	Entity    string
	EntityID  string
	ActorRole string
	ActorID   int
	Limit     int
	Offset    int
}
