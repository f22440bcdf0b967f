package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resort-backend/internal/metrics"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
	"resort-backend/internal/timeutil"
)

type OfferService struct {
	repo          *repositories.SpecialOfferRepository
	agents        *repositories.AgentRepository
	notifications *repositories.NotificationRepository
}

func NewOfferService(repo *repositories.SpecialOfferRepository, agents *repositories.AgentRepository, notifications *repositories.NotificationRepository) *OfferService {
	return &OfferService{repo: repo, agents: agents, notifications: notifications}
}

func (s *OfferService) buildOffer(req *models.SpecialOfferRequest, createdBy int) (*models.SpecialOffer, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("discount_percent must be between 0 and 100")
	}

	validFrom, err := timeutil.ParseInIST(timeutil.DateLayout, req.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid valid_from date: %w", err)
	}
	validTo, err := timeutil.ParseInIST(timeutil.DateLayout, req.ValidTo)
	if err != nil {
		return nil, fmt.Errorf("invalid valid_to date: %w", err)
	}
	if validTo.Before(validFrom) {
		return nil, fmt.Errorf("valid_to cannot be before valid_from")
	}

	return &models.SpecialOffer{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
		PropertyTypeID:  req.PropertyTypeID,
		AgentID:         req.AgentID,
		CreatedByUserID: createdBy,
	}, nil
}

// Create publishes the offer and fans notifications out to the targeted
// agents: the scoped agent when set, otherwise every approved agent.
func (s *OfferService) Create(ctx context.Context, req *models.SpecialOfferRequest, createdBy int) (*models.SpecialOffer, error) {
	offer, err := s.buildOffer(req, createdBy)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.fanOut(ctx, offer)
	log.Printf("[Offer] Published %q (%.1f%% off) by user %d", offer.Title, offer.DiscountPercent, createdBy)
	return offer, nil
}

func (s *OfferService) fanOut(ctx context.Context, offer *models.SpecialOffer) {
	var agentIDs []int
	if offer.AgentID != nil {
		agentIDs = []int{*offer.AgentID}
	} else {
		approved, err := s.agents.List(ctx, models.AgentStatusApproved)
		if err != nil {
			log.Printf("[Offer] Failed to list agents for fan-out: %v", err)
			return
		}
		for _, a := range approved {
			agentIDs = append(agentIDs, a.ID)
		}
	}
	if len(agentIDs) == 0 {
		return
	}

	message := fmt.Sprintf("%s: %.1f%% off, valid %s to %s.",
		offer.Title, offer.DiscountPercent,
		timeutil.FormatIST(offer.ValidFrom, timeutil.DateLayout),
		timeutil.FormatIST(offer.ValidTo, timeutil.DateLayout))

	err := s.notifications.CreateForAgents(ctx, agentIDs,
		models.NotificationTypeSpecialOffer, "New Special Offer", message, &offer.ID)
	if err != nil {
		log.Printf("[Offer] Notification fan-out failed for offer %d: %v", offer.ID, err)
		return
	}
	metrics.NotificationsCreatedTotal.Add(float64(len(agentIDs)))
}

func (s *OfferService) List(ctx context.Context) ([]*models.SpecialOffer, error) {
	return s.repo.List(ctx)
}

func (s *OfferService) Get(ctx context.Context, id int) (*models.SpecialOffer, error) {
	return s.repo.Get(ctx, id)
}

func (s *OfferService) Update(ctx context.Context, id int, req *models.SpecialOfferRequest) (*models.SpecialOffer, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	offer, err := s.buildOffer(req, existing.CreatedByUserID)
	if err != nil {
		return nil, err
	}
	offer.ID = id

	if err := s.repo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *OfferService) ToggleActive(ctx context.Context, id int) (bool, error) {
	return s.repo.ToggleActive(ctx, id)
}

func (s *OfferService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
