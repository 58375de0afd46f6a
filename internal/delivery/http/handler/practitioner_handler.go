package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/usecase"
	"medical-office-api/pkg/response"
	"medical-office-api/pkg/validator"
)

type PractitionerHandler struct {
	practitionerUsecase usecase.PractitionerUsecase
	validator           *validator.CustomValidator
}

func NewPractitionerHandler(practitionerUsecase usecase.PractitionerUsecase, validator *validator.CustomValidator) *PractitionerHandler {
	return &PractitionerHandler{
		practitionerUsecase: practitionerUsecase,
		validator:           validator,
	}
}

func (h *PractitionerHandler) CreatePractitioner(w http.ResponseWriter, r *http.Request) {
	var req dto.PractitionerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practitioner, err := h.practitionerUsecase.CreatePractitioner(r.Context(), &req)
	if err != nil {
		writePractitionerError(w, err, "Failed to create practitioner")
		return
	}

	response.Success(w, http.StatusCreated, "Practitioner created successfully", practitioner)
}

func (h *PractitionerHandler) GetPractitioner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid practitioner ID")
		return
	}

	practitioner, err := h.practitionerUsecase.GetPractitioner(r.Context(), id)
	if err != nil {
		writePractitionerError(w, err, "Failed to get practitioner")
		return
	}

	response.Success(w, http.StatusOK, "Practitioner retrieved successfully", practitioner)
}

func (h *PractitionerHandler) GetAllPractitioners(w http.ResponseWriter, r *http.Request) {
	practitioners, err := h.practitionerUsecase.GetAllPractitioners(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get practitioners")
		return
	}

	response.Success(w, http.StatusOK, "Practitioners retrieved successfully", practitioners)
}

func (h *PractitionerHandler) UpdatePractitioner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid practitioner ID")
		return
	}

	var req dto.PractitionerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practitioner, err := h.practitionerUsecase.UpdatePractitioner(r.Context(), id, &req)
	if err != nil {
		writePractitionerError(w, err, "Failed to update practitioner")
		return
	}

	response.Success(w, http.StatusOK, "Practitioner updated successfully", practitioner)
}

func (h *PractitionerHandler) DeletePractitioner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid practitioner ID")
		return
	}

	if err := h.practitionerUsecase.DeletePractitioner(r.Context(), id); err != nil {
		writePractitionerError(w, err, "Failed to delete practitioner")
		return
	}

	response.Success(w, http.StatusOK, "Practitioner deleted successfully", nil)
}

func writePractitionerError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPractitionerNotFound):
		response.NotFound(w, "Practitioner not found")
	case errors.Is(err, usecase.ErrPractitionerEmailExists):
		response.Conflict(w, "A practitioner with this email already exists")
	case errors.Is(err, usecase.ErrPractitionerPhoneExists):
		response.Conflict(w, "A practitioner with this phone number already exists")
	default:
		response.InternalServerError(w, fallback)
	}
}
