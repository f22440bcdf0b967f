package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type ServiceRequestRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRequestRepository(db *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{DB: db}
}

const serviceRequestSelectColumns = `
	s.id, s.guest_id, s.category, COALESCE(s.details, ''), s.priority, s.status,
	s.updated_by_user_id, s.started_at, s.completed_at, s.cancelled_at,
	s.created_at, s.updated_at,
	COALESCE(g.name, 'Unknown Guest'), COALESCE(g.phone, '')
`

func scanServiceRequest(row interface{ Scan(...any) error }) (*models.ServiceRequest, error) {
	s := &models.ServiceRequest{}
	err := row.Scan(
		&s.ID, &s.GuestID, &s.Category, &s.Details, &s.Priority, &s.Status,
		&s.UpdatedByUserID, &s.StartedAt, &s.CompletedAt, &s.CancelledAt,
		&s.CreatedAt, &s.UpdatedAt,
		&s.GuestName, &s.GuestPhone,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ServiceRequestRepository) Create(ctx context.Context, s *models.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (guest_id, category, details, priority, status)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'normal'), 'received')
		RETURNING id, priority, status, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		s.GuestID, s.Category, s.Details, s.Priority,
	).Scan(&s.ID, &s.Priority, &s.Status, &s.CreatedAt, &s.UpdatedAt)
}

func (r *ServiceRequestRepository) Get(ctx context.Context, id int) (*models.ServiceRequest, error) {
	query := `
		SELECT ` + serviceRequestSelectColumns + `
		FROM service_requests s
		LEFT JOIN guests g ON s.guest_id = g.id
		WHERE s.id = $1
	`

	return scanServiceRequest(r.DB.QueryRow(ctx, query, id))
}

// List returns service requests newest first, optionally filtered by status
func (r *ServiceRequestRepository) List(ctx context.Context, status string) ([]*models.ServiceRequest, error) {
	query := `
		SELECT ` + serviceRequestSelectColumns + `
		FROM service_requests s
		LEFT JOIN guests g ON s.guest_id = g.id
		WHERE ($1 = '' OR s.status = $1)
		ORDER BY s.created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.ServiceRequest
	for rows.Next() {
		s, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, s)
	}

	return requests, nil
}

// Transition moves a request into newStatus, stamping the matching
// timestamp column. The fromStatuses guard enforces workflow order at the
// database level so concurrent updates cannot skip or rewind a state.
func (r *ServiceRequestRepository) Transition(ctx context.Context, id int, newStatus string, fromStatuses []string, updatedBy int) error {
	var timestampColumn string
	switch newStatus {
	case models.ServiceStatusInProgress:
		timestampColumn = "started_at"
	case models.ServiceStatusCompleted:
		timestampColumn = "completed_at"
	case models.ServiceStatusCancelled:
		timestampColumn = "cancelled_at"
	default:
		return fmt.Errorf("no transition target %q", newStatus)
	}

	query := fmt.Sprintf(`
		UPDATE service_requests
		SET status = $1, %s = CURRENT_TIMESTAMP, updated_by_user_id = $2,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND status = ANY($4)
	`, timestampColumn)

	tag, err := r.DB.Exec(ctx, query, newStatus, updatedBy, id, fromStatuses)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotPending
	}
	return nil
}

// CountOpen powers the dashboard badge for unfinished tickets
func (r *ServiceRequestRepository) CountOpen(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM service_requests WHERE status IN ('received', 'in_progress')",
	).Scan(&count)
	return count, err
}
