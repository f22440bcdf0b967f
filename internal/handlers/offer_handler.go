package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resort-backend/internal/middleware"
	"resort-backend/internal/models"
	"resort-backend/internal/services"
)

// OfferHandler manages special offer campaigns
type OfferHandler struct {
	service *services.OfferService
	audit   *services.AuditService
}

func NewOfferHandler(service *services.OfferService, audit *services.AuditService) *OfferHandler {
	return &OfferHandler{service: service, audit: audit}
}

// List handles GET /api/offers
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if offers == nil {
		offers = []*models.SpecialOffer{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offers)
}

// Create handles POST /api/offers
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.SpecialOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	offer, err := h.service.Create(r.Context(), &req, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "create", "special_offer", &offer.ID, "Published offer "+offer.Title)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(offer)
}

// Update handles PUT /api/offers/{id}
func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	var req models.SpecialOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	offer, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "update", "special_offer", &id, "Updated offer "+offer.Title)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offer)
}

// ToggleActive handles POST /api/offers/{id}/toggle-active
func (h *OfferHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
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
	h.audit.Record(r, action, "special_offer", &id, "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"is_active": isActive})
}

// Delete handles DELETE /api/offers/{id}
func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid offer ID", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.audit.Record(r, "delete", "special_offer", &id, "")

	w.WriteHeader(http.StatusNoContent)
}
