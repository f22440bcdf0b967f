package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
)

type ServiceRequestService struct {
	repo *repositories.ServiceRequestRepository
}

func NewServiceRequestService(repo *repositories.ServiceRequestRepository) *ServiceRequestService {
	return &ServiceRequestService{repo: repo}
}

func (s *ServiceRequestService) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceRequest, error) {
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("category is required")
	}

	sr := &models.ServiceRequest{
		GuestID:  req.GuestID,
		Category: strings.TrimSpace(req.Category),
		Details:  req.Details,
		Priority: req.Priority,
	}

	if err := s.repo.Create(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

func (s *ServiceRequestService) List(ctx context.Context, status string) ([]*models.ServiceRequest, error) {
	return s.repo.List(ctx, status)
}

func (s *ServiceRequestService) Get(ctx context.Context, id int) (*models.ServiceRequest, error) {
	return s.repo.Get(ctx, id)
}

// Transition moves the ticket to newStatus after checking workflow
// legality. The repository re-checks the source status inside the UPDATE
// so a concurrent change cannot sneak a ticket backwards.
func (s *ServiceRequestService) Transition(ctx context.Context, id int, newStatus string, updatedBy int) (*models.ServiceRequest, error) {
	sr, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionServiceRequest(sr.Status, newStatus) {
		return nil, fmt.Errorf("cannot move request from %s to %s", sr.Status, newStatus)
	}

	var fromStatuses []string
	if newStatus == models.ServiceStatusCancelled {
		fromStatuses = []string{models.ServiceStatusReceived, models.ServiceStatusInProgress}
	} else {
		fromStatuses = []string{sr.Status}
	}

	if err := s.repo.Transition(ctx, id, newStatus, fromStatuses, updatedBy); err != nil {
		return nil, err
	}

	log.Printf("[ServiceRequest] Request %d moved %s -> %s by user %d", id, sr.Status, newStatus, updatedBy)
	return s.repo.Get(ctx, id)
}

func (s *ServiceRequestService) CountOpen(ctx context.Context) (int, error) {
	return s.repo.CountOpen(ctx)
}
