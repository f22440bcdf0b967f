package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type NotificationRepository struct {
	DB *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (agent_id, type, title, message, related_entity_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at
	`

	return r.DB.QueryRow(ctx, query,
		n.AgentID, n.Type, n.Title, n.Message, n.RelatedEntityID,
	).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

// CreateForAgents fans one notification out to many agents in a single
// transaction. Used by special-offer publication.
func (r *NotificationRepository) CreateForAgents(ctx context.Context, agentIDs []int, notifType, title, message string, relatedID *int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, agentID := range agentIDs {
		_, err = tx.Exec(ctx,
			"INSERT INTO notifications (agent_id, type, title, message, related_entity_id) VALUES ($1, $2, $3, $4, $5)",
			agentID, notifType, title, message, relatedID,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *NotificationRepository) ListByAgent(ctx context.Context, agentID int) ([]*models.Notification, error) {
	query := `
		SELECT id, agent_id, type, title, message, related_entity_id, is_read, created_at
		FROM notifications
		WHERE agent_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := r.DB.Query(ctx, query, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(&n.ID, &n.AgentID, &n.Type, &n.Title, &n.Message, &n.RelatedEntityID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, agentID int) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE agent_id = $1 AND is_read = FALSE",
		agentID,
	).Scan(&count)
	return count, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "UPDATE notifications SET is_read = TRUE WHERE id = $1", id)
	return err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, agentID int) error {
	_, err := r.DB.Exec(ctx, "UPDATE notifications SET is_read = TRUE WHERE agent_id = $1", agentID)
	return err
}
