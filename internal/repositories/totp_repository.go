package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TOTPRepository struct {
	DB *pgxpool.Pool
}

func NewTOTPRepository(db *pgxpool.Pool) *TOTPRepository {
	return &TOTPRepository{DB: db}
}

// GetSecret returns the stored secret and whether 2FA is enabled.
// A missing row means 2FA was never set up.
func (r *TOTPRepository) GetSecret(ctx context.Context, userID int) (string, bool, error) {
	var secret string
	var enabled bool
	err := r.DB.QueryRow(ctx,
		"SELECT secret, enabled FROM user_totp WHERE user_id = $1", userID,
	).Scan(&secret, &enabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return secret, enabled, nil
}

// SaveSecret stores a new secret in the disabled state; a re-setup
// replaces any existing secret.
func (r *TOTPRepository) SaveSecret(ctx context.Context, userID int, secret string) error {
	query := `
		INSERT INTO user_totp (user_id, secret, enabled)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id)
		DO UPDATE SET secret = EXCLUDED.secret, enabled = FALSE
	`

	_, err := r.DB.Exec(ctx, query, userID, secret)
	return err
}

func (r *TOTPRepository) Enable(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, "UPDATE user_totp SET enabled = TRUE WHERE user_id = $1", userID)
	return err
}

func (r *TOTPRepository) Disable(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM user_totp WHERE user_id = $1", userID)
	return err
}
