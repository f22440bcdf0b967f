package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

// Setting keys for the payment configuration singleton
const (
	SettingPaymentCashContact = "payment_cash_contact"
	SettingPaymentUPIID       = "payment_upi_id"
	SettingPaymentUPIName     = "payment_upi_name"
)

type SettingRepository struct {
	DB *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	query := `
		SELECT id, setting_key, setting_value, COALESCE(description, ''),
		       updated_at, COALESCE(updated_by_user_id, 0)
		FROM settings
		WHERE setting_key = $1
	`

	s := &models.Setting{}
	err := r.DB.QueryRow(ctx, query, key).Scan(
		&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt, &s.UpdatedByUserID,
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// GetValue returns the value for a key, or the fallback when the row is absent
func (r *SettingRepository) GetValue(ctx context.Context, key, fallback string) string {
	var value string
	err := r.DB.QueryRow(ctx,
		"SELECT setting_value FROM settings WHERE setting_key = $1", key,
	).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

// Upsert creates the setting on first save and updates it thereafter
func (r *SettingRepository) Upsert(ctx context.Context, key, value string, updatedBy int) error {
	query := `
		INSERT INTO settings (setting_key, setting_value, updated_by_user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (setting_key)
		DO UPDATE SET setting_value = EXCLUDED.setting_value,
		              updated_by_user_id = EXCLUDED.updated_by_user_id,
		              updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.DB.Exec(ctx, query, key, value, updatedBy)
	return err
}

func (r *SettingRepository) List(ctx context.Context) ([]*models.Setting, error) {
	query := `
		SELECT id, setting_key, setting_value, COALESCE(description, ''),
		       updated_at, COALESCE(updated_by_user_id, 0)
		FROM settings
		ORDER BY setting_key
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		s := &models.Setting{}
		err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt, &s.UpdatedByUserID)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}

	return settings, nil
}
