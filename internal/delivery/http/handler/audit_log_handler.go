package handler

import (
	"errors"
	"net/http"
	"strconv"

	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/usecase"
	"medical-office-api/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListAuditLogs supports ?action=, ?entity=, ?entity_id=, ?actor_role=,
// ?actor_id=, ?page= and ?limit=.
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := dto.AuditLogListQuery{
		Action:    r.URL.Query().Get("action"),
		Entity:    r.URL.Query().Get("entity"),
		ActorRole: r.URL.Query().Get("actor_role"),
	}

	var err error
	ints := []struct {
		key  string
		dest *int
	}{
		{"entity_id", &query.EntityID},
		{"actor_id", &query.ActorID},
		{"page", &query.Page},
		{"limit", &query.Limit},
	}
	for _, param := range ints {
		if *param.dest, err = queryInt(r, param.key); err != nil {
			response.BadRequest(w, "Invalid "+param.key)
			return
		}
	}

	result, err := h.auditLogUsecase.ListAuditLogs(r.Context(), &query)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownAuditAction):
			response.BadRequest(w, "Unknown audit action")
		case errors.Is(err, usecase.ErrUnknownActorRole):
			response.BadRequest(w, "Unknown actor role")
		default:
			response.InternalServerError(w, "Failed to get audit logs")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", result.Logs,
		response.NewMeta(result.Page, result.Limit, result.Total))
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || auditLogID <= 0 {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}
