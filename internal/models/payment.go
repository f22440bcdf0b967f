package models

import "time"

// Payment statuses derived from the advance against the agent rate
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
)

type Payment struct {
	ID               int       `json:"id"`
	ReceiptNumber    string    `json:"receipt_number"`
	BookingRequestID int       `json:"booking_request_id"`
	GuestID          int       `json:"guest_id"`
	GuestName        string    `json:"guest_name,omitempty"` // Joined from guests table
	TotalAmount      float64   `json:"total_amount"`
	AdvancePaid      float64   `json:"advance_paid"`
	BalanceDue       float64   `json:"balance_due"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentMethod    string    `json:"payment_method,omitempty"` // cash, upi, online
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RecordPaymentRequest settles some or all of an outstanding balance
type RecordPaymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

// PaymentConfig is a singleton assembled from settings rows: at most one
// logical record, created on first save and updated thereafter.
type PaymentConfig struct {
	CashContact string `json:"cash_contact"`
	UPIID       string `json:"upi_id"`
	UPIName     string `json:"upi_name"`
}
