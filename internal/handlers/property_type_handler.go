package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resort-backend/internal/models"
	"resort-backend/internal/services"
)

// PropertyTypeHandler manages property types and their room inventory
type PropertyTypeHandler struct {
	service *services.PropertyTypeService
	audit   *services.AuditService
}

func NewPropertyTypeHandler(service *services.PropertyTypeService, audit *services.AuditService) *PropertyTypeHandler {
	return &PropertyTypeHandler{service: service, audit: audit}
}

// List handles GET /api/property-types
func (h *PropertyTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if types == nil {
		types = []*models.PropertyType{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(types)
}

// Get handles GET /api/property-types/{id}
func (h *PropertyTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid property type ID", http.StatusBadRequest)
		return
	}

	pt, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Property type not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pt)
}

// Create handles POST /api/property-types
func (h *PropertyTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pt, err := h.service.Create(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "create", "property_type", &pt.ID, "Created property type "+pt.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(pt)
}

// Update handles PUT /api/property-types/{id}
func (h *PropertyTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid property type ID", http.StatusBadRequest)
		return
	}

	var req models.UpdatePropertyTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pt, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "update", "property_type", &id, "Updated property type "+pt.Name)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pt)
}

// Delete handles DELETE /api/property-types/{id}
func (h *PropertyTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid property type ID", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.audit.Record(r, "delete", "property_type", &id, "")

	w.WriteHeader(http.StatusNoContent)
}

// ListRooms handles GET /api/property-types/{id}/rooms
func (h *PropertyTypeHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid property type ID", http.StatusBadRequest)
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if rooms == nil {
		rooms = []*models.Room{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rooms)
}
