package converter

import (
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Age:       patient.Age,
		Address:   patient.Address,
		Email:     patient.Email,
		Sex:       patient.Sex,
		Phone:     patient.Phone,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// ApplyPatientRequest copies the request fields onto the entity.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) {
	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.Age = req.Age
	patient.Address = req.Address
	patient.Email = req.Email
	patient.Sex = req.Sex
	patient.Phone = req.Phone
}
