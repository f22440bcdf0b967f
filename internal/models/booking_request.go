package models

import "time"

// Booking request statuses. Approved and rejected are terminal; approval
// additionally creates the derived guest, booking room and payment records.
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)

type BookingRequest struct {
	ID                 int        `json:"id"`
	AgentID            int        `json:"agent_id"`
	PropertyTypeID     int        `json:"property_type_id"`
	GuestName          string     `json:"guest_name"`
	GuestPhone         string     `json:"guest_phone"`
	GuestEmail         string     `json:"guest_email,omitempty"`
	CheckIn            time.Time  `json:"check_in"`
	CheckOut           time.Time  `json:"check_out"`
	NumRooms           int        `json:"num_rooms"`
	NumGuests          int        `json:"num_guests"`
	ListPrice          float64    `json:"list_price"`
	AgentRate          float64    `json:"agent_rate"`
	AdvanceAmount      float64    `json:"advance_amount"`
	Status             string     `json:"status"`
	AdminNotes         string     `json:"admin_notes,omitempty"`
	ConfirmationNumber string     `json:"confirmation_number,omitempty"`
	ReviewedByUserID   *int       `json:"reviewed_by_user_id,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`

	// Joined from agents and property_types tables. Fallback text is
	// substituted in SQL when the related record is missing.
	AgentName    string `json:"agent_name,omitempty"`
	AgentPhone   string `json:"agent_phone,omitempty"`
	PropertyName string `json:"property_name,omitempty"`
}

func (b *BookingRequest) StatusValue() string { return b.Status }

// CreateBookingRequest represents an agent-submitted booking request
type CreateBookingRequest struct {
	AgentID        int     `json:"agent_id"`
	PropertyTypeID int     `json:"property_type_id"`
	GuestName      string  `json:"guest_name"`
	GuestPhone     string  `json:"guest_phone"`
	GuestEmail     string  `json:"guest_email"`
	CheckIn        string  `json:"check_in"`  // YYYY-MM-DD
	CheckOut       string  `json:"check_out"` // YYYY-MM-DD
	NumRooms       int     `json:"num_rooms"`
	NumGuests      int     `json:"num_guests"`
	ListPrice      float64 `json:"list_price"`
	AgentRate      float64 `json:"agent_rate"`
	AdvanceAmount  float64 `json:"advance_amount"`
}

// BookingDecisionRequest carries the operator note for approve/reject.
// Rejection requires a non-empty note.
type BookingDecisionRequest struct {
	Note string `json:"note"`
}

// BookingApprovalResult bundles everything created by an approval
type BookingApprovalResult struct {
	Request      *BookingRequest `json:"request"`
	Guest        *Guest          `json:"guest"`
	BookingRoom  *BookingRoom    `json:"booking_room"`
	Payment      *Payment        `json:"payment"`
	WhatsAppLink string          `json:"whatsapp_link,omitempty"`
}

type BookingRejectionResult struct {
	Request      *BookingRequest `json:"request"`
	WhatsAppLink string          `json:"whatsapp_link,omitempty"`
}
