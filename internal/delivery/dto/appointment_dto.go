package dto

import (
	"time"

	"medical-office-api/pkg/optional"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID      int    `json:"patient_id" validate:"required,gt=0"`
	PractitionerID int    `json:"practitioner_id" validate:"required,gt=0"`
	ScheduledAt    string `json:"scheduled_at" validate:"required"`
	Status         string `json:"status" validate:"omitempty,oneof=en_attente confirme annule"`
	ParentID       *int   `json:"parent_id" validate:"omitempty,gt=0"`
}

// UpdateAppointmentRequest is a merge-patch body: keys left out of the JSON
// keep their stored value.
type UpdateAppointmentRequest struct {
	PatientID      optional.Value[int]    `json:"patient_id"`
	PractitionerID optional.Value[int]    `json:"practitioner_id"`
	ScheduledAt    optional.Value[string] `json:"scheduled_at"`
	Status         optional.Value[string] `json:"status"`
	ParentID       optional.Value[int]    `json:"parent_id"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                    int       `json:"id"`
	PatientID             int       `json:"patient_id"`
	PractitionerID        int       `json:"practitioner_id"`
	ScheduledAt           time.Time `json:"scheduled_at"`
	Status                string    `json:"status"`
	ParentID              *int      `json:"parent_id"`
	PatientFirstName      string    `json:"patient_first_name,omitempty"`
	PatientLastName       string    `json:"patient_last_name,omitempty"`
	PractitionerFirstName string    `json:"practitioner_first_name,omitempty"`
	PractitionerLastName  string    `json:"practitioner_last_name,omitempty"`
}
