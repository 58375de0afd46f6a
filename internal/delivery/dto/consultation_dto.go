package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateConsultationRequest struct {
	AppointmentID int              `json:"appointment_id" validate:"required,gt=0"`
	ConsultedAt   string           `json:"consulted_at"` // optional, defaults to now
	Report        string           `json:"report"`
	Price         *decimal.Decimal `json:"price"`
}

type UpdateConsultationRequest struct {
	ConsultedAt string           `json:"consulted_at" validate:"required"`
	Report      string           `json:"report"`
	Price       *decimal.Decimal `json:"price"`
}

type ConsultationSearchQuery struct {
	Patient      string
	Practitioner string
	Date         string // Format: YYYY-MM-DD
	Report       string
}

// Response DTOs

type ConsultationResponse struct {
	ID                    int                    `json:"id"`
	AppointmentID         int                    `json:"appointment_id"`
	ConsultedAt           time.Time              `json:"consulted_at"`
	Report                string                 `json:"report"`
	Price                 decimal.NullDecimal    `json:"price"`
	AutoGenerated         bool                   `json:"auto_generated"`
	PatientFirstName      string                 `json:"patient_first_name,omitempty"`
	PatientLastName       string                 `json:"patient_last_name,omitempty"`
	PractitionerFirstName string                 `json:"practitioner_first_name,omitempty"`
	PractitionerLastName  string                 `json:"practitioner_last_name,omitempty"`
	Prescriptions         []PrescriptionResponse `json:"prescriptions,omitempty"`
	Exams                 []ExamResponse         `json:"exams,omitempty"`
}
