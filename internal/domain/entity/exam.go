package entity

// Exam is a medical exam ordered during a consultation. ExamDate is kept as
// free text, the office records approximate dates ("mid-June").
type Exam struct {
	ID             int    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConsultationID int    `gorm:"not null;index" json:"consultation_id"`
	Type           string `gorm:"type:text;not null" json:"type"`
	ExamDate       string `gorm:"type:text;not null" json:"exam_date"`
	Result         string `gorm:"type:text" json:"result,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
