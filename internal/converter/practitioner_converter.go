package converter

import (
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
)

func PractitionerToResponse(practitioner *entity.Practitioner) *dto.PractitionerResponse {
	if practitioner == nil {
		return nil
	}

	return &dto.PractitionerResponse{
		ID:        practitioner.ID,
		FirstName: practitioner.FirstName,
		LastName:  practitioner.LastName,
		Phone:     practitioner.Phone,
		Email:     practitioner.Email,
		Specialty: practitioner.Specialty,
	}
}

func PractitionersToResponses(practitioners []entity.Practitioner) []dto.PractitionerResponse {
	responses := make([]dto.PractitionerResponse, len(practitioners))
	for i := range practitioners {
		responses[i] = *PractitionerToResponse(&practitioners[i])
	}
	return responses
}

func ApplyPractitionerRequest(practitioner *entity.Practitioner, req *dto.PractitionerRequest) {
	practitioner.FirstName = req.FirstName
	practitioner.LastName = req.LastName
	practitioner.Phone = req.Phone
	practitioner.Email = req.Email
	practitioner.Specialty = req.Specialty
}
