package models

import "time"

// SpecialOffer is a discount campaign, optionally scoped to one property
// type and/or one agent. Creating an offer fans out notifications to the
// targeted agents.
type SpecialOffer struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidTo         time.Time `json:"valid_to"`
	PropertyTypeID  *int      `json:"property_type_id,omitempty"`
	AgentID         *int      `json:"agent_id,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedByUserID int       `json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	PropertyName string `json:"property_name,omitempty"`
	AgentName    string `json:"agent_name,omitempty"`
}

type SpecialOfferRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discount_percent"`
	ValidFrom       string  `json:"valid_from"` // YYYY-MM-DD
	ValidTo         string  `json:"valid_to"`   // YYYY-MM-DD
	PropertyTypeID  *int    `json:"property_type_id"`
	AgentID         *int    `json:"agent_id"`
}
