package models

import "time"

// Agent statuses. Both approved and rejected are terminal.
const (
	AgentStatusPending  = "pending"
	AgentStatusApproved = "approved"
	AgentStatusRejected = "rejected"
)

type Agent struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	CompanyName       string     `json:"company_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	WhatsAppNumber    string     `json:"whatsapp_number"`
	CommissionPercent float64    `json:"commission_percent"`
	Status            string     `json:"status"`
	ReviewedByUserID  *int       `json:"reviewed_by_user_id,omitempty"`
	ReviewedByName    string     `json:"reviewed_by_name,omitempty"` // Joined from users table
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (a *Agent) StatusValue() string { return a.Status }

// UpdateAgentRequest represents the request body for editing agent details
type UpdateAgentRequest struct {
	Name              string  `json:"name"`
	CompanyName       string  `json:"company_name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	WhatsAppNumber    string  `json:"whatsapp_number"`
	CommissionPercent float64 `json:"commission_percent"`
}

// AgentDecisionRequest carries the operator note for approve/reject actions.
// A rejection note is mandatory; an approval note is optional.
type AgentDecisionRequest struct {
	Note string `json:"note"`
}

// AgentDecisionResponse is returned after an approve/reject transition
type AgentDecisionResponse struct {
	Agent        *Agent `json:"agent"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}
