package entity

import (
	"errors"
	"fmt"
	"time"

	"medical-office-api/pkg/optional"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "en_attente"
	AppointmentStatusConfirmed AppointmentStatus = "confirme"
	AppointmentStatusCancelled AppointmentStatus = "annule"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a scheduled encounter between a patient and a practitioner.
// ParentID links follow-up appointments to the one they continue.
type Appointment struct {
	ID             int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int               `gorm:"not null;index" json:"patient_id"`
	PractitionerID int               `gorm:"not null;index" json:"practitioner_id"`
	ScheduledAt    time.Time         `gorm:"not null" json:"scheduled_at"`
	Status         AppointmentStatus `gorm:"type:text;not null;default:'en_attente'" json:"status"`
	ParentID       *int              `json:"parent_id,omitempty"`

	// Relationships
	Patient      *Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Practitioner *Practitioner `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsConfirmed checks if appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

var ErrInvalidPatch = errors.New("invalid appointment patch")

// AppointmentPatch is a merge-patch: only fields that are Set are written.
// ParentID is the only field that may be cleared with an explicit null.
type AppointmentPatch struct {
	PatientID      optional.Value[int]
	PractitionerID optional.Value[int]
	ScheduledAt    optional.Value[time.Time]
	Status         optional.Value[AppointmentStatus]
	ParentID       optional.Value[int]
}

func (p AppointmentPatch) Validate() error {
	switch {
	case p.PatientID.Set && p.PatientID.Null:
		return fmt.Errorf("%w: patient_id cannot be null", ErrInvalidPatch)
	case p.PractitionerID.Set && p.PractitionerID.Null:
		return fmt.Errorf("%w: practitioner_id cannot be null", ErrInvalidPatch)
	case p.ScheduledAt.Set && p.ScheduledAt.Null:
		return fmt.Errorf("%w: scheduled_at cannot be null", ErrInvalidPatch)
	case p.Status.Set && p.Status.Null:
		return fmt.Errorf("%w: status cannot be null", ErrInvalidPatch)
	case p.Status.HasValue() && !p.Status.V.IsValid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidPatch, p.Status.V)
	}
	return nil
}

// Apply merges the patch into the appointment and returns the changed
// columns keyed by column name. Fields equal to the stored value are skipped.
func (a *Appointment) Apply(p AppointmentPatch) map[string]interface{} {
	changes := make(map[string]interface{})

	if v, ok := p.PatientID.Get(); ok && v != a.PatientID {
		a.PatientID = v
		changes["patient_id"] = v
	}
	if v, ok := p.PractitionerID.Get(); ok && v != a.PractitionerID {
		a.PractitionerID = v
		changes["practitioner_id"] = v
	}
	if v, ok := p.ScheduledAt.Get(); ok && !v.Equal(a.ScheduledAt) {
		a.ScheduledAt = v
		changes["scheduled_at"] = v
	}
	if v, ok := p.Status.Get(); ok && v != a.Status {
		a.Status = v
		changes["status"] = v
	}
	if p.ParentID.Set {
		switch {
		case p.ParentID.Null && a.ParentID != nil:
			a.ParentID = nil
			changes["parent_id"] = nil
		case !p.ParentID.Null && (a.ParentID == nil || *a.ParentID != p.ParentID.V):
			parentID := p.ParentID.V
			a.ParentID = &parentID
			changes["parent_id"] = parentID
		}
	}

	return changes
}
