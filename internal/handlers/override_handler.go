package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resort-backend/internal/models"
	"resort-backend/internal/services"
)

// OverrideHandler manages commission override windows
type OverrideHandler struct {
	service *services.OverrideService
	audit   *services.AuditService
}

func NewOverrideHandler(service *services.OverrideService, audit *services.AuditService) *OverrideHandler {
	return &OverrideHandler{service: service, audit: audit}
}

// List handles GET /api/commission-overrides
func (h *OverrideHandler) List(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if overrides == nil {
		overrides = []*models.CommissionOverride{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overrides)
}

// Create handles POST /api/commission-overrides
func (h *OverrideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CommissionOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.service.Create(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "create", "commission_override", &o.ID, "")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// Update handles PUT /api/commission-overrides/{id}
func (h *OverrideHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid override ID", http.StatusBadRequest)
		return
	}

	var req models.CommissionOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "update", "commission_override", &id, "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// ToggleActive handles POST /api/commission-overrides/{id}/toggle-active
func (h *OverrideHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid override ID", http.StatusBadRequest)
		return
	}

	isActive, err := h.service.ToggleActive(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	action := "disable"
	if isActive {
		action = "enable"
	}
	h.audit.Record(r, action, "commission_override", &id, "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"is_active": isActive})
}

// Delete handles DELETE /api/commission-overrides/{id}
func (h *OverrideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid override ID", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.audit.Record(r, "delete", "commission_override", &id, "")

	w.WriteHeader(http.StatusNoContent)
}
