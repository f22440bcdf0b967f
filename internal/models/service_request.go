package models

import "time"

// Service request statuses. Forward-only: received → in_progress → completed,
// with cancel reachable from any non-terminal state.
const (
	ServiceStatusReceived   = "received"
	ServiceStatusInProgress = "in_progress"
	ServiceStatusCompleted  = "completed"
	ServiceStatusCancelled  = "cancelled"
)

type ServiceRequest struct {
	ID              int        `json:"id"`
	GuestID         int        `json:"guest_id"`
	Category        string     `json:"category"` // housekeeping, maintenance, food, other
	Details         string     `json:"details"`
	Priority        string     `json:"priority"` // low, normal, high
	Status          string     `json:"status"`
	UpdatedByUserID *int       `json:"updated_by_user_id,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Joined from guests table, with fallback text when the guest is missing
	GuestName  string `json:"guest_name,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`
}

func (s *ServiceRequest) StatusValue() string { return s.Status }

type CreateServiceRequest struct {
	GuestID  int    `json:"guest_id"`
	Category string `json:"category"`
	Details  string `json:"details"`
	Priority string `json:"priority"`
}
