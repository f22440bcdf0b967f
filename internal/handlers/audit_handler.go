package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"resort-backend/internal/models"
	"resort-backend/internal/services"
)

// AuditHandler serves the admin action and login trails (admin only)
type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

// ListActions handles GET /api/audit/actions?limit=100
func (h *AuditHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.ListActions(r.Context(), limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if logs == nil {
		logs = []*models.AdminActionLog{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}

// ListLogins handles GET /api/audit/logins?limit=100
func (h *AuditHandler) ListLogins(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.ListLogins(r.Context(), limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if logs == nil {
		logs = []*models.LoginLog{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}
