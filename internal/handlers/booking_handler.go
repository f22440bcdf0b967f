package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resort-backend/internal/middleware"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
	"resort-backend/internal/services"
)

// BookingHandler manages booking requests and their review workflow
type BookingHandler struct {
	service *services.BookingService
	audit   *services.AuditService
}

func NewBookingHandler(service *services.BookingService, audit *services.AuditService) *BookingHandler {
	return &BookingHandler{service: service, audit: audit}
}

// bookingView decorates a request with the actions legal for its status,
// so the console renders buttons without duplicating workflow rules
type bookingView struct {
	*models.BookingRequest
	Actions []string `json:"actions"`
}

func toBookingViews(requests []*models.BookingRequest) []bookingView {
	views := make([]bookingView, 0, len(requests))
	for _, b := range requests {
		views = append(views, bookingView{BookingRequest: b, Actions: models.BookingActions(b.Status)})
	}
	return views
}

// List handles GET /api/bookings?status=pending
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toBookingViews(requests))
}

// Get handles GET /api/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Booking request not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookingView{BookingRequest: b, Actions: models.BookingActions(b.Status)})
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.service.Create(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(b)
}

// Approve handles POST /api/bookings/{id}/approve
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, userID, note, ok := h.decisionInput(w, r)
	if !ok {
		return
	}

	result, err := h.service.Approve(r.Context(), id, userID, note)
	if err != nil {
		if errors.Is(err, repositories.ErrNotPending) {
			http.Error(w, "Booking request has already been reviewed", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "approve", "booking_request", &id, result.Request.ConfirmationNumber)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Reject handles POST /api/bookings/{id}/reject
func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, userID, note, ok := h.decisionInput(w, r)
	if !ok {
		return
	}

	b, err := h.service.Reject(r.Context(), id, userID, note)
	if err != nil {
		if errors.Is(err, repositories.ErrNotPending) {
			http.Error(w, "Booking request has already been reviewed", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "reject", "booking_request", &id, note)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}

func (h *BookingHandler) decisionInput(w http.ResponseWriter, r *http.Request) (id, userID int, note string, ok bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return 0, 0, "", false
	}

	userID, found := middleware.GetUserIDFromContext(r.Context())
	if !found {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, 0, "", false
	}

	var req models.BookingDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return 0, 0, "", false
	}

	return id, userID, req.Note, true
}

// Summary handles GET /api/bookings/summary
func (h *BookingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.CountByStatus(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}
