package models

import "time"

// CommissionOverride is a time-bounded exception to an agent's default
// commission rate. A nil AgentID or PropertyTypeID means "applies to all".
type CommissionOverride struct {
	ID                int       `json:"id"`
	AgentID           *int      `json:"agent_id,omitempty"`
	PropertyTypeID    *int      `json:"property_type_id,omitempty"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	CommissionPercent float64   `json:"commission_percent"`
	IsActive          bool      `json:"is_active"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Joined for display; "All Agents" / "All Properties" when unscoped
	AgentName    string `json:"agent_name,omitempty"`
	PropertyName string `json:"property_name,omitempty"`
}

type CommissionOverrideRequest struct {
	AgentID           *int    `json:"agent_id"`
	PropertyTypeID    *int    `json:"property_type_id"`
	StartDate         string  `json:"start_date"` // YYYY-MM-DD
	EndDate           string  `json:"end_date"`   // YYYY-MM-DD
	CommissionPercent float64 `json:"commission_percent"`
	Description       string  `json:"description"`
}
