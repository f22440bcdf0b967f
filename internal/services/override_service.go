package services

import (
	"context"
	"fmt"

	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
	"resort-backend/internal/timeutil"
)

type OverrideService struct {
	repo *repositories.CommissionOverrideRepository
}

func NewOverrideService(repo *repositories.CommissionOverrideRepository) *OverrideService {
	return &OverrideService{repo: repo}
}

func (s *OverrideService) build(req *models.CommissionOverrideRequest) (*models.CommissionOverride, error) {
	if req.CommissionPercent < 0 || req.CommissionPercent > 100 {
		return nil, fmt.Errorf("commission_percent must be between 0 and 100")
	}

	startDate, err := timeutil.ParseInIST(timeutil.DateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := timeutil.ParseInIST(timeutil.DateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end_date cannot be before start_date")
	}

	return &models.CommissionOverride{
		AgentID:           req.AgentID,
		PropertyTypeID:    req.PropertyTypeID,
		StartDate:         startDate,
		EndDate:           endDate,
		CommissionPercent: req.CommissionPercent,
		Description:       req.Description,
	}, nil
}

func (s *OverrideService) Create(ctx context.Context, req *models.CommissionOverrideRequest) (*models.CommissionOverride, error) {
	o, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, o.ID)
}

func (s *OverrideService) List(ctx context.Context) ([]*models.CommissionOverride, error) {
	return s.repo.List(ctx)
}

func (s *OverrideService) Update(ctx context.Context, id int, req *models.CommissionOverrideRequest) (*models.CommissionOverride, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	o, err := s.build(req)
	if err != nil {
		return nil, err
	}
	o.ID = id

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// ToggleActive flips the override; toggling twice restores the original state
func (s *OverrideService) ToggleActive(ctx context.Context, id int) (bool, error) {
	return s.repo.ToggleActive(ctx, id)
}

func (s *OverrideService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
