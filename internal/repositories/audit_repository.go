package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

// AuditRepository records admin actions and login sessions
type AuditRepository struct {
	DB *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) LogAction(ctx context.Context, log *models.AdminActionLog) error {
	query := `
		INSERT INTO admin_action_logs (admin_user_id, action_type, target_type, target_id, description, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		log.AdminUserID, log.ActionType, log.TargetType, log.TargetID, log.Description, log.IPAddress,
	).Scan(&log.ID, &log.CreatedAt)
}

func (r *AuditRepository) ListActions(ctx context.Context, limit int) ([]*models.AdminActionLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, admin_user_id, action_type, target_type, target_id,
		       COALESCE(description, ''), ip_address, created_at
		FROM admin_action_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.AdminActionLog
	for rows.Next() {
		l := &models.AdminActionLog{}
		err := rows.Scan(&l.ID, &l.AdminUserID, &l.ActionType, &l.TargetType, &l.TargetID, &l.Description, &l.IPAddress, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, nil
}

func (r *AuditRepository) RecordLogin(ctx context.Context, userID int, ipAddress, userAgent string) (int, error) {
	var id int
	err := r.DB.QueryRow(ctx,
		"INSERT INTO login_logs (user_id, ip_address, user_agent) VALUES ($1, $2, $3) RETURNING id",
		userID, ipAddress, userAgent,
	).Scan(&id)
	return id, err
}

// RecordLogout stamps the most recent open session for the user
func (r *AuditRepository) RecordLogout(ctx context.Context, userID int) error {
	query := `
		UPDATE login_logs
		SET logout_time = CURRENT_TIMESTAMP
		WHERE id = (
			SELECT id FROM login_logs
			WHERE user_id = $1 AND logout_time IS NULL
			ORDER BY login_time DESC
			LIMIT 1
		)
	`

	_, err := r.DB.Exec(ctx, query, userID)
	return err
}

func (r *AuditRepository) ListLogins(ctx context.Context, limit int) ([]*models.LoginLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, user_id, login_time, logout_time,
		       COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at
		FROM login_logs
		ORDER BY login_time DESC
		LIMIT $1
	`

	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.LoginLog
	for rows.Next() {
		l := &models.LoginLog{}
		err := rows.Scan(&l.ID, &l.UserID, &l.LoginTime, &l.LogoutTime, &l.IPAddress, &l.UserAgent, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, nil
}
