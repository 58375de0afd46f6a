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

// AccountHandler serves the admin-only user and administrator management routes.
type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
	validator      *validator.CustomValidator
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase, validator *validator.CustomValidator) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
		validator:      validator,
	}
}

func (h *AccountHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *AccountHandler) GetPendingUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountUsecase.GetPendingUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pending users")
		return
	}

	response.Success(w, http.StatusOK, "Pending users retrieved successfully", users)
}

func (h *AccountHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.accountUsecase.ApproveUser(r.Context(), id); err != nil {
		writeAccountError(w, err, "Failed to approve user")
		return
	}

	response.Success(w, http.StatusOK, "User approved successfully", nil)
}

func (h *AccountHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.accountUsecase.DeleteUser(r.Context(), id); err != nil {
		writeAccountError(w, err, "Failed to delete user")
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}

func (h *AccountHandler) GetAllAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.accountUsecase.GetAllAdmins(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get admins")
		return
	}

	response.Success(w, http.StatusOK, "Admins retrieved successfully", admins)
}

func (h *AccountHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.accountUsecase.CreateAdmin(r.Context(), &req)
	if err != nil {
		writeAccountError(w, err, "Failed to create admin")
		return
	}

	response.Success(w, http.StatusCreated, "Admin created successfully", admin)
}

func (h *AccountHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid admin ID")
		return
	}

	var req dto.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.accountUsecase.UpdateAdmin(r.Context(), id, &req)
	if err != nil {
		writeAccountError(w, err, "Failed to update admin")
		return
	}

	response.Success(w, http.StatusOK, "Admin updated successfully", admin)
}

func (h *AccountHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid admin ID")
		return
	}

	if err := h.accountUsecase.DeleteAdmin(r.Context(), id); err != nil {
		writeAccountError(w, err, "Failed to delete admin")
		return
	}

	response.Success(w, http.StatusOK, "Admin deleted successfully", nil)
}

func (h *AccountHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	var req dto.PromoteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.accountUsecase.PromoteUser(r.Context(), &req)
	if err != nil {
		writeAccountError(w, err, "Failed to promote user")
		return
	}

	response.Success(w, http.StatusOK, "User promoted to admin successfully", admin)
}

func writeAccountError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, usecase.ErrAdminNotFound):
		response.NotFound(w, "Admin not found")
	case errors.Is(err, usecase.ErrAdminEmailExists):
		response.Conflict(w, "An admin with this email already exists")
	case errors.Is(err, usecase.ErrAdminLimitReached):
		response.BadRequest(w, "Maximum number of administrators reached")
	case errors.Is(err, usecase.ErrLastAdmin):
		response.BadRequest(w, "The last administrator cannot be deleted")
	case errors.Is(err, usecase.ErrUserNotApproved):
		response.BadRequest(w, "Only approved users can be promoted")
	default:
		response.InternalServerError(w, fallback)
	}
}
