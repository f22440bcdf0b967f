package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resort-backend/internal/metrics"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
	"resort-backend/internal/whatsapp"
)

type AgentService struct {
	repo          *repositories.AgentRepository
	notifications *repositories.NotificationRepository
}

func NewAgentService(repo *repositories.AgentRepository, notifications *repositories.NotificationRepository) *AgentService {
	return &AgentService{repo: repo, notifications: notifications}
}

func (s *AgentService) List(ctx context.Context, status string) ([]*models.Agent, error) {
	return s.repo.List(ctx, status)
}

func (s *AgentService) Get(ctx context.Context, id int) (*models.Agent, error) {
	return s.repo.Get(ctx, id)
}

func (s *AgentService) Create(ctx context.Context, a *models.Agent) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if a.CommissionPercent < 0 || a.CommissionPercent > 100 {
		return fmt.Errorf("commission_percent must be between 0 and 100")
	}
	return s.repo.Create(ctx, a)
}

func (s *AgentService) Update(ctx context.Context, id int, req *models.UpdateAgentRequest) (*models.Agent, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.CommissionPercent < 0 || req.CommissionPercent > 100 {
		return nil, fmt.Errorf("commission_percent must be between 0 and 100")
	}

	a.Name = strings.TrimSpace(req.Name)
	a.CompanyName = req.CompanyName
	a.Email = req.Email
	a.Phone = req.Phone
	a.WhatsAppNumber = req.WhatsAppNumber
	a.CommissionPercent = req.CommissionPercent

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Approve moves a pending agent to approved, writes the in-app
// notification and builds the WhatsApp deep link for the operator.
// The database rejects the transition if the agent is no longer pending.
func (s *AgentService) Approve(ctx context.Context, id, reviewerID int, note string) (*models.AgentDecisionResponse, error) {
	if err := s.repo.Decide(ctx, id, models.AgentStatusApproved, reviewerID, note); err != nil {
		return nil, err
	}

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, a, models.NotificationTypeAgentApproved, "Account Approved",
		fmt.Sprintf("Your agent account has been approved with a %.1f%% commission rate.", a.CommissionPercent))

	link := whatsapp.BuildLink(a.WhatsAppNumber, whatsapp.AgentApprovedMessage(a.Name, a.CommissionPercent))
	log.Printf("[Agent] Approved agent %d (%s) by user %d", a.ID, a.Name, reviewerID)

	return &models.AgentDecisionResponse{Agent: a, WhatsAppLink: link}, nil
}

// Reject moves a pending agent to rejected. The note is mandatory: the
// agent must be told why.
func (s *AgentService) Reject(ctx context.Context, id, reviewerID int, note string) (*models.AgentDecisionResponse, error) {
	if strings.TrimSpace(note) == "" {
		return nil, fmt.Errorf("a rejection note is required")
	}

	if err := s.repo.Decide(ctx, id, models.AgentStatusRejected, reviewerID, note); err != nil {
		return nil, err
	}

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, a, models.NotificationTypeAgentRejected, "Account Not Approved",
		fmt.Sprintf("Your agent account could not be approved. Reason: %s", note))

	link := whatsapp.BuildLink(a.WhatsAppNumber, whatsapp.AgentRejectedMessage(a.Name, note))
	log.Printf("[Agent] Rejected agent %d (%s) by user %d", a.ID, a.Name, reviewerID)

	return &models.AgentDecisionResponse{Agent: a, WhatsAppLink: link}, nil
}

// notify writes the in-app record; a failure is logged but never blocks
// the decision that already committed
func (s *AgentService) notify(ctx context.Context, a *models.Agent, notifType, title, message string) {
	n := &models.Notification{
		AgentID: a.ID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		log.Printf("[Agent] Failed to write notification for agent %d: %v", a.ID, err)
		return
	}
	metrics.NotificationsCreatedTotal.Inc()
}

func (s *AgentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
