package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type CommissionOverrideRepository struct {
	DB *pgxpool.Pool
}

func NewCommissionOverrideRepository(db *pgxpool.Pool) *CommissionOverrideRepository {
	return &CommissionOverrideRepository{DB: db}
}

const overrideSelectColumns = `
	o.id, o.agent_id, o.property_type_id, o.start_date, o.end_date,
	o.commission_percent, o.is_active, COALESCE(o.description, ''),
	o.created_at, o.updated_at,
	COALESCE(a.name, 'All Agents'), COALESCE(pt.name, 'All Properties')
`

func scanOverride(row interface{ Scan(...any) error }) (*models.CommissionOverride, error) {
	o := &models.CommissionOverride{}
	err := row.Scan(
		&o.ID, &o.AgentID, &o.PropertyTypeID, &o.StartDate, &o.EndDate,
		&o.CommissionPercent, &o.IsActive, &o.Description,
		&o.CreatedAt, &o.UpdatedAt,
		&o.AgentName, &o.PropertyName,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *CommissionOverrideRepository) Create(ctx context.Context, o *models.CommissionOverride) error {
	query := `
		INSERT INTO commission_overrides (agent_id, property_type_id, start_date, end_date, commission_percent, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, is_active, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		o.AgentID, o.PropertyTypeID, o.StartDate, o.EndDate, o.CommissionPercent, o.Description,
	).Scan(&o.ID, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
}

func (r *CommissionOverrideRepository) Get(ctx context.Context, id int) (*models.CommissionOverride, error) {
	query := `
		SELECT ` + overrideSelectColumns + `
		FROM commission_overrides o
		LEFT JOIN agents a ON o.agent_id = a.id
		LEFT JOIN property_types pt ON o.property_type_id = pt.id
		WHERE o.id = $1
	`

	return scanOverride(r.DB.QueryRow(ctx, query, id))
}

func (r *CommissionOverrideRepository) List(ctx context.Context) ([]*models.CommissionOverride, error) {
	query := `
		SELECT ` + overrideSelectColumns + `
		FROM commission_overrides o
		LEFT JOIN agents a ON o.agent_id = a.id
		LEFT JOIN property_types pt ON o.property_type_id = pt.id
		ORDER BY o.start_date DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []*models.CommissionOverride
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}

	return overrides, nil
}

func (r *CommissionOverrideRepository) Update(ctx context.Context, o *models.CommissionOverride) error {
	query := `
		UPDATE commission_overrides
		SET agent_id = $1, property_type_id = $2, start_date = $3, end_date = $4,
		    commission_percent = $5, description = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
	`

	_, err := r.DB.Exec(ctx, query,
		o.AgentID, o.PropertyTypeID, o.StartDate, o.EndDate, o.CommissionPercent, o.Description, o.ID,
	)
	return err
}

// ToggleActive flips the override on or off and returns the new state
func (r *CommissionOverrideRepository) ToggleActive(ctx context.Context, id int) (bool, error) {
	var isActive bool
	err := r.DB.QueryRow(ctx,
		"UPDATE commission_overrides SET is_active = NOT is_active, updated_at = CURRENT_TIMESTAMP WHERE id = $1 RETURNING is_active",
		id,
	).Scan(&isActive)
	return isActive, err
}

func (r *CommissionOverrideRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM commission_overrides WHERE id = $1", id)
	return err
}
