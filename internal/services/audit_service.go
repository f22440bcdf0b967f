package services

import (
	"context"
	"log"
	"net/http"
	"strings"

	"resort-backend/internal/middleware"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
)

// AuditService writes the admin action trail. Recording is best-effort:
// an audit failure never fails the operation it describes.
type AuditService struct {
	repo *repositories.AuditRepository
}

func NewAuditService(repo *repositories.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record logs an admin action taken during the given request
func (s *AuditService) Record(r *http.Request, actionType, targetType string, targetID *int, description string) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return
	}

	ip := requestIP(r)
	entry := &models.AdminActionLog{
		AdminUserID: userID,
		ActionType:  actionType,
		TargetType:  targetType,
		TargetID:    targetID,
		Description: description,
		IPAddress:   &ip,
	}

	if err := s.repo.LogAction(r.Context(), entry); err != nil {
		log.Printf("[Audit] Failed to record %s %s: %v", actionType, targetType, err)
	}
}

func requestIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}

func (s *AuditService) ListActions(ctx context.Context, limit int) ([]*models.AdminActionLog, error) {
	return s.repo.ListActions(ctx, limit)
}

func (s *AuditService) ListLogins(ctx context.Context, limit int) ([]*models.LoginLog, error) {
	return s.repo.ListLogins(ctx, limit)
}
