package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resort-backend/internal/models"
	"resort-backend/internal/services"
)

// PhotoHandler manages the property photo collection
type PhotoHandler struct {
	service *services.PhotoService
	audit   *services.AuditService
}

func NewPhotoHandler(service *services.PhotoService, audit *services.AuditService) *PhotoHandler {
	return &PhotoHandler{service: service, audit: audit}
}

// List handles GET /api/property-types/{id}/photos
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	propertyTypeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid property type ID", http.StatusBadRequest)
		return
	}

	photos, err := h.service.List(r.Context(), propertyTypeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if photos == nil {
		photos = []*models.PropertyPhoto{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(photos)
}

// InitiateUpload handles POST /api/photos/upload
func (h *PhotoHandler) InitiateUpload(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.InitiateUpload(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "upload", "property_photo", &resp.Photo.ID, resp.Photo.ObjectKey)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// Delete handles DELETE /api/photos/{id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid photo ID", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.audit.Record(r, "delete", "property_photo", &id, "")

	w.WriteHeader(http.StatusNoContent)
}
