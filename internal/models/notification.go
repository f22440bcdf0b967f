package models

import "time"

// Notification types
const (
	NotificationTypeAgentApproved   = "agent_approved"
	NotificationTypeAgentRejected   = "agent_rejected"
	NotificationTypeBookingApproved = "booking_approved"
	NotificationTypeBookingRejected = "booking_rejected"
	NotificationTypeSpecialOffer    = "special_offer"
)

// Notification is an unread-by-default record for an agent, retrieved later
// by the agent-facing app. Delivery is not confirmed.
type Notification struct {
	ID              int       `json:"id"`
	AgentID         int       `json:"agent_id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	RelatedEntityID *int      `json:"related_entity_id,omitempty"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}
