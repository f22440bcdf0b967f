package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type SpecialOfferRepository struct {
	DB *pgxpool.Pool
}

func NewSpecialOfferRepository(db *pgxpool.Pool) *SpecialOfferRepository {
	return &SpecialOfferRepository{DB: db}
}

const offerSelectColumns = `
	o.id, o.title, COALESCE(o.description, ''), o.discount_percent,
	o.valid_from, o.valid_to, o.property_type_id, o.agent_id, o.is_active,
	COALESCE(o.created_by_user_id, 0), o.created_at, o.updated_at,
	COALESCE(pt.name, 'All Properties'), COALESCE(a.name, 'All Agents')
`

func scanOffer(row interface{ Scan(...any) error }) (*models.SpecialOffer, error) {
	o := &models.SpecialOffer{}
	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.DiscountPercent,
		&o.ValidFrom, &o.ValidTo, &o.PropertyTypeID, &o.AgentID, &o.IsActive,
		&o.CreatedByUserID, &o.CreatedAt, &o.UpdatedAt,
		&o.PropertyName, &o.AgentName,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *SpecialOfferRepository) Create(ctx context.Context, o *models.SpecialOffer) error {
	query := `
		INSERT INTO special_offers (title, description, discount_percent, valid_from, valid_to,
		                            property_type_id, agent_id, created_by_user_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		RETURNING id, is_active, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		o.Title, o.Description, o.DiscountPercent, o.ValidFrom, o.ValidTo,
		o.PropertyTypeID, o.AgentID, o.CreatedByUserID,
	).Scan(&o.ID, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
}

func (r *SpecialOfferRepository) Get(ctx context.Context, id int) (*models.SpecialOffer, error) {
	query := `
		SELECT ` + offerSelectColumns + `
		FROM special_offers o
		LEFT JOIN property_types pt ON o.property_type_id = pt.id
		LEFT JOIN agents a ON o.agent_id = a.id
		WHERE o.id = $1
	`

	return scanOffer(r.DB.QueryRow(ctx, query, id))
}

func (r *SpecialOfferRepository) List(ctx context.Context) ([]*models.SpecialOffer, error) {
	query := `
		SELECT ` + offerSelectColumns + `
		FROM special_offers o
		LEFT JOIN property_types pt ON o.property_type_id = pt.id
		LEFT JOIN agents a ON o.agent_id = a.id
		ORDER BY o.created_at DESC
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*models.SpecialOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}

func (r *SpecialOfferRepository) Update(ctx context.Context, o *models.SpecialOffer) error {
	query := `
		UPDATE special_offers
		SET title = $1, description = $2, discount_percent = $3,
		    valid_from = $4, valid_to = $5, property_type_id = $6, agent_id = $7,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`

	_, err := r.DB.Exec(ctx, query,
		o.Title, o.Description, o.DiscountPercent,
		o.ValidFrom, o.ValidTo, o.PropertyTypeID, o.AgentID, o.ID,
	)
	return err
}

func (r *SpecialOfferRepository) ToggleActive(ctx context.Context, id int) (bool, error) {
	var isActive bool
	err := r.DB.QueryRow(ctx,
		"UPDATE special_offers SET is_active = NOT is_active, updated_at = CURRENT_TIMESTAMP WHERE id = $1 RETURNING is_active",
		id,
	).Scan(&isActive)
	return isActive, err
}

func (r *SpecialOfferRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM special_offers WHERE id = $1", id)
	return err
}
