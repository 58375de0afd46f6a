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

type ExamHandler struct {
	examUsecase usecase.ExamUsecase
	validator   *validator.CustomValidator
}

func NewExamHandler(examUsecase usecase.ExamUsecase, validator *validator.CustomValidator) *ExamHandler {
	return &ExamHandler{
		examUsecase: examUsecase,
		validator:   validator,
	}
}

func (h *ExamHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.examUsecase.CreateExam(r.Context(), &req)
	if err != nil {
		writeExamError(w, err, "Failed to create exam")
		return
	}

	response.Success(w, http.StatusCreated, "Exam created successfully", exam)
}

func (h *ExamHandler) GetExams(w http.ResponseWriter, r *http.Request) {
	consultationID, err := queryInt(r, "consultation_id")
	if err != nil {
		response.BadRequest(w, "Invalid consultation ID")
		return
	}

	exams, err := h.examUsecase.GetExams(r.Context(), consultationID)
	if err != nil {
		response.InternalServerError(w, "Failed to get exams")
		return
	}

	response.Success(w, http.StatusOK, "Exams retrieved successfully", exams)
}

func (h *ExamHandler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid exam ID")
		return
	}

	var req dto.UpdateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.examUsecase.UpdateExam(r.Context(), id, &req)
	if err != nil {
		writeExamError(w, err, "Failed to update exam")
		return
	}

	response.Success(w, http.StatusOK, "Exam updated successfully", exam)
}

func (h *ExamHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid exam ID")
		return
	}

	if err := h.examUsecase.DeleteExam(r.Context(), id); err != nil {
		writeExamError(w, err, "Failed to delete exam")
		return
	}

	response.Success(w, http.StatusOK, "Exam deleted successfully", nil)
}

func writeExamError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrExamNotFound):
		response.NotFound(w, "Exam not found")
	case errors.Is(err, usecase.ErrInvalidReference):
		response.BadRequest(w, "Consultation does not exist")
	default:
		response.InternalServerError(w, fallback)
	}
}
