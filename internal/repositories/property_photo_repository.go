package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type PropertyPhotoRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyPhotoRepository(db *pgxpool.Pool) *PropertyPhotoRepository {
	return &PropertyPhotoRepository{DB: db}
}

func (r *PropertyPhotoRepository) Create(ctx context.Context, p *models.PropertyPhoto) error {
	query := `
		INSERT INTO property_photos (property_type_id, object_key, caption, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		p.PropertyTypeID, p.ObjectKey, p.Caption, p.SortOrder,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PropertyPhotoRepository) Get(ctx context.Context, id int) (*models.PropertyPhoto, error) {
	query := `
		SELECT id, property_type_id, object_key, COALESCE(caption, ''), sort_order, created_at
		FROM property_photos
		WHERE id = $1
	`

	p := &models.PropertyPhoto{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.PropertyTypeID, &p.ObjectKey, &p.Caption, &p.SortOrder, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PropertyPhotoRepository) ListByPropertyType(ctx context.Context, propertyTypeID int) ([]*models.PropertyPhoto, error) {
	query := `
		SELECT id, property_type_id, object_key, COALESCE(caption, ''), sort_order, created_at
		FROM property_photos
		WHERE property_type_id = $1
		ORDER BY sort_order, id
	`

	rows, err := r.DB.Query(ctx, query, propertyTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []*models.PropertyPhoto
	for rows.Next() {
		p := &models.PropertyPhoto{}
		err := rows.Scan(&p.ID, &p.PropertyTypeID, &p.ObjectKey, &p.Caption, &p.SortOrder, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	return photos, nil
}

func (r *PropertyPhotoRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM property_photos WHERE id = $1", id)
	return err
}
