package services

import (
	"context"
	"fmt"
	"log"

	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
)

type PaymentService struct {
	repo     *repositories.PaymentRepository
	settings *repositories.SettingRepository
}

func NewPaymentService(repo *repositories.PaymentRepository, settings *repositories.SettingRepository) *PaymentService {
	return &PaymentService{repo: repo, settings: settings}
}

func (s *PaymentService) List(ctx context.Context, status string) ([]*models.Payment, error) {
	return s.repo.List(ctx, status)
}

func (s *PaymentService) Get(ctx context.Context, id int) (*models.Payment, error) {
	return s.repo.Get(ctx, id)
}

// Settle records an amount collected against the outstanding balance
func (s *PaymentService) Settle(ctx context.Context, id int, req *models.RecordPaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.BalanceDue <= 0 {
		return nil, fmt.Errorf("payment %s is already settled", p.ReceiptNumber)
	}
	if req.Amount > p.BalanceDue {
		return nil, fmt.Errorf("amount exceeds the outstanding balance of %.2f", p.BalanceDue)
	}

	settled, err := s.repo.Settle(ctx, id, req.Amount, req.PaymentMethod, req.Notes)
	if err != nil {
		return nil, err
	}

	log.Printf("[Payment] Collected %.2f against %s (balance now %.2f)", req.Amount, settled.ReceiptNumber, settled.BalanceDue)
	return settled, nil
}

// GetConfig assembles the payment configuration singleton from settings rows
func (s *PaymentService) GetConfig(ctx context.Context) (*models.PaymentConfig, error) {
	return &models.PaymentConfig{
		CashContact: s.settings.GetValue(ctx, repositories.SettingPaymentCashContact, ""),
		UPIID:       s.settings.GetValue(ctx, repositories.SettingPaymentUPIID, ""),
		UPIName:     s.settings.GetValue(ctx, repositories.SettingPaymentUPIName, ""),
	}, nil
}

// SaveConfig upserts each field: creates the rows on first save, updates
// them thereafter. There is never more than one logical config.
func (s *PaymentService) SaveConfig(ctx context.Context, cfg *models.PaymentConfig, updatedBy int) error {
	pairs := map[string]string{
		repositories.SettingPaymentCashContact: cfg.CashContact,
		repositories.SettingPaymentUPIID:       cfg.UPIID,
		repositories.SettingPaymentUPIName:     cfg.UPIName,
	}
	for key, value := range pairs {
		if err := s.settings.Upsert(ctx, key, value, updatedBy); err != nil {
			return err
		}
	}
	return nil
}
