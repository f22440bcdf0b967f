package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resort-backend/internal/middleware"
	"resort-backend/internal/models"
	"resort-backend/internal/services"
)

// PaymentHandler manages payment records, settlements and receipts
type PaymentHandler struct {
	service  *services.PaymentService
	receipts *services.ReceiptService
	audit    *services.AuditService
}

func NewPaymentHandler(service *services.PaymentService, receipts *services.ReceiptService, audit *services.AuditService) *PaymentHandler {
	return &PaymentHandler{service: service, receipts: receipts, audit: audit}
}

// List handles GET /api/payments?status=partial
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if payments == nil {
		payments = []*models.Payment{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}

// Get handles GET /api/payments/{id}
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Settle handles POST /api/payments/{id}/settle
func (h *PaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	var req models.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.Settle(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.audit.Record(r, "settle", "payment", &id, fmt.Sprintf("Collected %.2f against %s", req.Amount, p.ReceiptNumber))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Receipt handles GET /api/payments/{id}/receipt (PDF download)
func (h *PaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	pdfBytes, err := h.receipts.GeneratePDF(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt.pdf")
	w.Write(pdfBytes)
}

// GetConfig handles GET /api/payment-config
func (h *PaymentHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetConfig(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

// SaveConfig handles PUT /api/payment-config
func (h *PaymentHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var cfg models.PaymentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SaveConfig(r.Context(), &cfg, userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.audit.Record(r, "update", "payment_config", nil, "Updated payment configuration")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&cfg)
}
