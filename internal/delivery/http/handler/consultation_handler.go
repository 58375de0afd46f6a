package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/usecase"
	"medical-office-api/pkg/response"
	"medical-office-api/pkg/validator"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

func (h *ConsultationHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.CreateConsultation(r.Context(), &req)
	if err != nil {
		writeConsultationError(w, err, "Failed to create consultation")
		return
	}

	response.Success(w, http.StatusCreated, "Consultation created successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid consultation ID")
		return
	}

	consultation, err := h.consultationUsecase.GetConsultation(r.Context(), id)
	if err != nil {
		writeConsultationError(w, err, "Failed to get consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) GetAllConsultations(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.consultationUsecase.GetAllConsultations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}

// SearchConsultations filters on ?patient=, ?practitioner=, ?date=YYYY-MM-DD and ?report=.
func (h *ConsultationHandler) SearchConsultations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	consultations, err := h.consultationUsecase.SearchConsultations(r.Context(), &dto.ConsultationSearchQuery{
		Patient:      q.Get("patient"),
		Practitioner: q.Get("practitioner"),
		Date:         q.Get("date"),
		Report:       q.Get("report"),
	})
	if err != nil {
		writeConsultationError(w, err, "Failed to search consultations")
		return
	}

	response.Success(w, http.StatusOK, "Consultations retrieved successfully", consultations)
}

func (h *ConsultationHandler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid consultation ID")
		return
	}

	var req dto.UpdateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultation, err := h.consultationUsecase.UpdateConsultation(r.Context(), id, &req)
	if err != nil {
		writeConsultationError(w, err, "Failed to update consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", consultation)
}

func (h *ConsultationHandler) DeleteConsultation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid consultation ID")
		return
	}

	if err := h.consultationUsecase.DeleteConsultation(r.Context(), id); err != nil {
		writeConsultationError(w, err, "Failed to delete consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation deleted successfully", nil)
}

func writeConsultationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrConsultationNotFound):
		response.NotFound(w, "Consultation not found")
	case errors.Is(err, usecase.ErrInvalidSearchDate):
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case errors.Is(err, converter.ErrInvalidTimestamp):
		response.BadRequest(w, "Invalid consulted_at")
	case errors.Is(err, usecase.ErrInvalidReference):
		response.BadRequest(w, "Appointment does not exist")
	default:
		response.InternalServerError(w, fallback)
	}
}
