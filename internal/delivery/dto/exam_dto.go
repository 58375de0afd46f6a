package dto

type CreateExamRequest struct {
	ConsultationID int    `json:"consultation_id" validate:"required,gt=0"`
	Type           string `json:"type" validate:"required,max=255"`
	ExamDate       string `json:"exam_date" validate:"required,max=100"`
	Result         string `json:"result"`
}

type UpdateExamRequest struct {
	Type     string `json:"type" validate:"required,max=255"`
	ExamDate string `json:"exam_date" validate:"required,max=100"`
	Result   string `json:"result"`
}

type ExamResponse struct {
	ID             int    `json:"id"`
	ConsultationID int    `json:"consultation_id"`
	Type           string `json:"type"`
	ExamDate       string `json:"exam_date"`
	Result         string `json:"result,omitempty"`
}
