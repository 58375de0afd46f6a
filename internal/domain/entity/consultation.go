package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AutoConsultationReport is the report stored on consultations created by
// confirming an appointment.
const AutoConsultationReport = "Consultation initiée automatiquement"

// Consultation is the clinical record of an appointment.
type Consultation struct {
	ID            int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int                 `gorm:"not null;index" json:"appointment_id"`
	ConsultedAt   time.Time           `gorm:"not null" json:"consulted_at"`
	Report        string              `gorm:"type:text" json:"report"`
	Price         decimal.NullDecimal `gorm:"type:numeric" json:"price"`
	AutoGenerated bool                `gorm:"not null;default:false" json:"auto_generated"`

	// Relationships
	Appointment   *Appointment   `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:ConsultationID" json:"prescriptions,omitempty"`
	Exams         []Exam         `gorm:"foreignKey:ConsultationID" json:"exams,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// NewAutoConsultation builds the consultation created when an appointment is confirmed.
func NewAutoConsultation(appointment *Appointment) *Consultation {
	return &Consultation{
		AppointmentID: appointment.ID,
		ConsultedAt:   appointment.ScheduledAt,
		Report:        AutoConsultationReport,
		AutoGenerated: true,
	}
}
