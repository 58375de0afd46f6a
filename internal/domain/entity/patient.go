package entity

// Patient is a person followed by the office.
type Patient struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:text;not null" json:"first_name"`
	LastName  string `gorm:"type:text;not null;index" json:"last_name"`
	Age       int    `gorm:"not null" json:"age"`
	Address   string `gorm:"type:text" json:"address,omitempty"`
	Email     string `gorm:"type:text;uniqueIndex" json:"email,omitempty"`
	Sex       string `gorm:"type:text" json:"sex,omitempty"`
	Phone     string `gorm:"type:text;uniqueIndex" json:"phone,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Sex values accepted by the patients.sex check constraint
const (
	SexMale   = "Homme"
	SexFemale = "Femme"
)
