package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

// ErrNotPending is returned when a decision targets a request that has
// already been reviewed. Approve/reject act only on pending records, so a
// concurrent double-decision loses cleanly.
var ErrNotPending = errors.New("record is not pending")

type AgentRepository struct {
	DB *pgxpool.Pool
}

func NewAgentRepository(db *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{DB: db}
}

const agentSelectColumns = `
	a.id, a.name, COALESCE(a.company_name, ''), COALESCE(a.email, ''),
	COALESCE(a.phone, ''), COALESCE(a.whatsapp_number, ''), a.commission_percent,
	a.status, a.reviewed_by_user_id, COALESCE(u.name, ''), a.reviewed_at,
	COALESCE(a.rejection_reason, ''), a.created_at, a.updated_at
`

func scanAgent(row interface{ Scan(...any) error }) (*models.Agent, error) {
	a := &models.Agent{}
	err := row.Scan(
		&a.ID, &a.Name, &a.CompanyName, &a.Email,
		&a.Phone, &a.WhatsAppNumber, &a.CommissionPercent,
		&a.Status, &a.ReviewedByUserID, &a.ReviewedByName, &a.ReviewedAt,
		&a.RejectionReason, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AgentRepository) Create(ctx context.Context, a *models.Agent) error {
	query := `
		INSERT INTO agents (name, company_name, email, phone, whatsapp_number, commission_percent, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
		RETURNING id, status, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		a.Name, a.CompanyName, a.Email, a.Phone, a.WhatsAppNumber, a.CommissionPercent,
	).Scan(&a.ID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AgentRepository) Get(ctx context.Context, id int) (*models.Agent, error) {
	query := `
		SELECT ` + agentSelectColumns + `
		FROM agents a
		LEFT JOIN users u ON a.reviewed_by_user_id = u.id
		WHERE a.id = $1
	`

	return scanAgent(r.DB.QueryRow(ctx, query, id))
}

// List returns agents, optionally filtered by status. An empty status
// returns everything.
func (r *AgentRepository) List(ctx context.Context, status string) ([]*models.Agent, error) {
	query := `
		SELECT ` + agentSelectColumns + `
		FROM agents a
		LEFT JOIN users u ON a.reviewed_by_user_id = u.id
		WHERE ($1 = '' OR a.status = $1)
		ORDER BY a.created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*models.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}

	return agents, nil
}

func (r *AgentRepository) Update(ctx context.Context, a *models.Agent) error {
	query := `
		UPDATE agents
		SET name = $1, company_name = $2, email = $3, phone = $4,
		    whatsapp_number = $5, commission_percent = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`

	_, err := r.DB.Exec(ctx, query,
		a.Name, a.CompanyName, a.Email, a.Phone, a.WhatsAppNumber, a.CommissionPercent, a.ID,
	)
	return err
}

// Decide moves a pending agent to approved or rejected. The WHERE guard
// makes the transition race-safe: the second of two concurrent decisions
// matches no row and gets ErrNotPending.
func (r *AgentRepository) Decide(ctx context.Context, id int, status string, reviewerID int, reason string) error {
	query := `
		UPDATE agents
		SET status = $1, reviewed_by_user_id = $2, reviewed_at = CURRENT_TIMESTAMP,
		    rejection_reason = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND status = 'pending'
	`

	tag, err := r.DB.Exec(ctx, query, status, reviewerID, reason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotPending
	}
	return nil
}

func (r *AgentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM agents WHERE id = $1", id)
	return err
}
