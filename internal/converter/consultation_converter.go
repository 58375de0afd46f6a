package converter

import (
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:            consultation.ID,
		AppointmentID: consultation.AppointmentID,
		ConsultedAt:   consultation.ConsultedAt,
		Report:        consultation.Report,
		Price:         consultation.Price,
		AutoGenerated: consultation.AutoGenerated,
	}

	if appointment := consultation.Appointment; appointment != nil {
		if appointment.Patient != nil {
			response.PatientFirstName = appointment.Patient.FirstName
			response.PatientLastName = appointment.Patient.LastName
		}
		if appointment.Practitioner != nil {
			response.PractitionerFirstName = appointment.Practitioner.FirstName
			response.PractitionerLastName = appointment.Practitioner.LastName
		}
	}

	if len(consultation.Prescriptions) > 0 {
		response.Prescriptions = PrescriptionsToResponses(consultation.Prescriptions)
	}
	if len(consultation.Exams) > 0 {
		response.Exams = ExamsToResponses(consultation.Exams)
	}

	return response
}

func ConsultationsToResponses(consultations []entity.Consultation) []dto.ConsultationResponse {
	responses := make([]dto.ConsultationResponse, len(consultations))
	for i := range consultations {
		responses[i] = *ConsultationToResponse(&consultations[i])
	}
	return responses
}

// NullPrice maps an omitted price to SQL NULL.
func NullPrice(price *decimal.Decimal) decimal.NullDecimal {
	if price == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*price)
}

func SearchQueryToFilter(query *dto.ConsultationSearchQuery) *entity.ConsultationFilter {
	if query == nil {
		return &entity.ConsultationFilter{}
	}
	return &entity.ConsultationFilter{
		Patient:      query.Patient,
		Practitioner: query.Practitioner,
		Date:         query.Date,
		Report:       query.Report,
	}
}
