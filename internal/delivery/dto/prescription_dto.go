package dto

type CreatePrescriptionRequest struct {
	ConsultationID int    `json:"consultation_id" validate:"required,gt=0"`
	Type           string `json:"type" validate:"required,max=255"`
	Dosage         string `json:"dosage" validate:"required,max=255"`
	PrescribedOn   string `json:"prescribed_on" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePrescriptionRequest struct {
	Type         string `json:"type" validate:"required,max=255"`
	Dosage       string `json:"dosage" validate:"required,max=255"`
	PrescribedOn string `json:"prescribed_on" validate:"omitempty,datetime=2006-01-02"`
}

type PrescriptionResponse struct {
	ID             int     `json:"id"`
	ConsultationID int     `json:"consultation_id"`
	Type           string  `json:"type"`
	Dosage         string  `json:"dosage"`
	PrescribedOn   *string `json:"prescribed_on"`
}
