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

// ServiceRequestHandler manages guest service tickets
type ServiceRequestHandler struct {
	service *services.ServiceRequestService
	audit   *services.AuditService
}

func NewServiceRequestHandler(service *services.ServiceRequestService, audit *services.AuditService) *ServiceRequestHandler {
	return &ServiceRequestHandler{service: service, audit: audit}
}

type serviceRequestView struct {
	*models.ServiceRequest
	Actions []string `json:"actions"`
}

// List handles GET /api/service-requests?status=received
func (h *ServiceRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	views := make([]serviceRequestView, 0, len(requests))
	for _, sr := range requests {
		views = append(views, serviceRequestView{ServiceRequest: sr, Actions: models.ServiceRequestActions(sr.Status)})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// Get handles GET /api/service-requests/{id}
func (h *ServiceRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	sr, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Service request not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(serviceRequestView{ServiceRequest: sr, Actions: models.ServiceRequestActions(sr.Status)})
}

// Create handles POST /api/service-requests
func (h *ServiceRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sr, err := h.service.Create(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sr)
}

// Start handles POST /api/service-requests/{id}/start
func (h *ServiceRequestHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.ServiceStatusInProgress)
}

// Complete handles POST /api/service-requests/{id}/complete
func (h *ServiceRequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.ServiceStatusCompleted)
}

// Cancel handles POST /api/service-requests/{id}/cancel
func (h *ServiceRequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.ServiceStatusCancelled)
}

func (h *ServiceRequestHandler) transition(w http.ResponseWriter, r *http.Request, newStatus string) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sr, err := h.service.Transition(r.Context(), id, newStatus, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	h.audit.Record(r, newStatus, "service_request", &id, "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(serviceRequestView{ServiceRequest: sr, Actions: models.ServiceRequestActions(sr.Status)})
}
