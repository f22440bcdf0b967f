package models

import "time"

// OnlineTransactionStatus represents the status of an online payment
type OnlineTransactionStatus string

const (
	OnlineTxStatusPending  OnlineTransactionStatus = "pending"
	OnlineTxStatusSuccess  OnlineTransactionStatus = "success"
	OnlineTxStatusFailed   OnlineTransactionStatus = "failed"
	OnlineTxStatusRefunded OnlineTransactionStatus = "refunded"
)

// OnlineTransaction represents a Razorpay collection of a booking advance
type OnlineTransaction struct {
	ID                int                     `json:"id"`
	RazorpayOrderID   string                  `json:"razorpay_order_id"`
	RazorpayPaymentID string                  `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string                  `json:"-"` // Don't expose signature in JSON
	BookingRequestID  int                     `json:"booking_request_id"`
	AgentID           int                     `json:"agent_id"`
	AgentName         string                  `json:"agent_name,omitempty"`
	Amount            float64                 `json:"amount"` // In rupees
	PaymentMethod     string                  `json:"payment_method,omitempty"` // upi, card, netbanking, wallet
	VPA               string                  `json:"vpa,omitempty"`
	Status            OnlineTransactionStatus `json:"status"`
	FailureReason     string                  `json:"failure_reason,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	CompletedAt       *time.Time              `json:"completed_at,omitempty"`
}

// CreateAdvanceOrderRequest initiates an online advance collection
type CreateAdvanceOrderRequest struct {
	BookingRequestID int     `json:"booking_request_id"`
	Amount           float64 `json:"amount"`
}

// CreateOrderResponse is returned to the checkout frontend
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"` // In paise
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// VerifyPaymentRequest is sent from the frontend after the Razorpay callback
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
