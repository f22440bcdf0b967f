package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
)

// RazorpayService collects booking advances online. An order is created
// against a pending booking request; once the frontend callback is
// verified, the advance lands on the request before approval derives the
// payment record.
type RazorpayService struct {
	transactions *repositories.OnlineTransactionRepository
	bookings     *repositories.BookingRequestRepository
	keyID        string
	keySecret    string
}

func NewRazorpayService(keyID, keySecret string, transactions *repositories.OnlineTransactionRepository, bookings *repositories.BookingRequestRepository) *RazorpayService {
	return &RazorpayService{
		transactions: transactions,
		bookings:     bookings,
		keyID:        keyID,
		keySecret:    keySecret,
	}
}

// IsConfigured reports whether online collection is available
func (s *RazorpayService) IsConfigured() bool {
	return s.keyID != "" && s.keySecret != ""
}

// CreateOrder creates a Razorpay order for a booking advance and records
// the pending transaction
func (s *RazorpayService) CreateOrder(ctx context.Context, req *models.CreateAdvanceOrderRequest) (*models.CreateOrderResponse, error) {
	if !s.IsConfigured() {
		return nil, fmt.Errorf("online payments are not configured")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	booking, err := s.bookings.Get(ctx, req.BookingRequestID)
	if err != nil {
		return nil, fmt.Errorf("booking request not found: %w", err)
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("advance can only be collected on a pending request")
	}

	client := razorpay.NewClient(s.keyID, s.keySecret)
	amountPaise := rupeesToPaise(req.Amount)

	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("adv_%d_%d", booking.ID, time.Now().Unix()),
		"notes": map[string]interface{}{
			"booking_request_id": booking.ID,
			"agent_id":           booking.AgentID,
			"guest_name":         booking.GuestName,
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	tx := &models.OnlineTransaction{
		RazorpayOrderID:  orderID,
		BookingRequestID: booking.ID,
		AgentID:          booking.AgentID,
		Amount:           req.Amount,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	log.Printf("[Razorpay] Created order %s for booking %d (%.2f)", orderID, booking.ID, req.Amount)

	return &models.CreateOrderResponse{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: "INR",
		KeyID:    s.keyID,
	}, nil
}

// VerifyPayment checks the callback signature and marks the transaction.
// On success the verified amount is added to the booking request's advance.
func (s *RazorpayService) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.OnlineTransaction, error) {
	tx, err := s.transactions.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return nil, fmt.Errorf("transaction not found: %w", err)
	}

	payload := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	if !s.verifySignature(payload, req.RazorpaySignature) {
		if err := s.transactions.MarkFailed(ctx, req.RazorpayOrderID, "signature verification failed"); err != nil {
			log.Printf("[Razorpay] Failed to mark order %s failed: %v", req.RazorpayOrderID, err)
		}
		return nil, fmt.Errorf("payment signature verification failed")
	}

	// Success mark and advance fold commit together; a booking decided
	// in the meantime leaves the transaction pending for review
	err = s.transactions.MarkSuccessAndFold(ctx,
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, "", "",
		tx.BookingRequestID, tx.Amount,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("[Razorpay] Verified payment %s for order %s", req.RazorpayPaymentID, req.RazorpayOrderID)
	return s.transactions.GetByOrderID(ctx, req.RazorpayOrderID)
}

// rupeesToPaise rounds rather than truncates: 1999.99 is stored as
// 199998.999... in float64 and would otherwise lose a paisa
func rupeesToPaise(amount float64) int {
	return int(math.Round(amount * 100))
}

func (s *RazorpayService) verifySignature(payload, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *RazorpayService) ListTransactions(ctx context.Context, status string) ([]*models.OnlineTransaction, error) {
	return s.transactions.List(ctx, status)
}
