package converter

import (
	"time"

	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:             prescription.ID,
		ConsultationID: prescription.ConsultationID,
		Type:           prescription.Type,
		Dosage:         prescription.Dosage,
	}
	if prescription.PrescribedOn != nil {
		date := prescription.PrescribedOn.Format(dateLayout)
		response.PrescribedOn = &date
	}
	return response
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}

// ParseDate returns nil for an empty string. Validation of the format
// happens in the request DTO.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func ExamToResponse(exam *entity.Exam) *dto.ExamResponse {
	if exam == nil {
		return nil
	}

	return &dto.ExamResponse{
		ID:             exam.ID,
		ConsultationID: exam.ConsultationID,
		Type:           exam.Type,
		ExamDate:       exam.ExamDate,
		Result:         exam.Result,
	}
}

func ExamsToResponses(exams []entity.Exam) []dto.ExamResponse {
	responses := make([]dto.ExamResponse, len(exams))
	for i := range exams {
		responses[i] = *ExamToResponse(&exams[i])
	}
	return responses
}
