package entity

// Practitioner is a doctor or other clinician appointments are booked with.
type Practitioner struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName  string `gorm:"type:text;not null" json:"last_name"`
	FirstName string `gorm:"type:text;not null" json:"first_name"`
	Phone     string `gorm:"type:text;uniqueIndex" json:"phone,omitempty"`
	Email     string `gorm:"type:text;uniqueIndex" json:"email,omitempty"`
	Specialty string `gorm:"type:text" json:"specialty,omitempty"`
}

func (Practitioner) TableName() string {
	return "practitioners"
}
