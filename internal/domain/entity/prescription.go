package entity

import "time"

// Prescription belongs to a consultation.
type Prescription struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ConsultationID int        `gorm:"not null;index" json:"consultation_id"`
	Type           string     `gorm:"type:text;not null" json:"type"`
	Dosage         string     `gorm:"type:text;not null" json:"dosage"`
	PrescribedOn   *time.Time `gorm:"type:date" json:"prescribed_on,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
