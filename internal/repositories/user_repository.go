package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (name, email, phone, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'frontdesk'), TRUE)
		RETURNING id, role, is_active, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		u.Name, u.Email, u.Phone, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	u := &models.User{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	u := &models.User{}
	err := r.DB.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), password_hash, role, is_active, created_at, updated_at
		FROM users
		ORDER BY name
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	// Password hash is only replaced when a new one was supplied
	query := `
		UPDATE users
		SET name = $1, email = $2, phone = $3, role = $4,
		    password_hash = COALESCE(NULLIF($5, ''), password_hash),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`

	_, err := r.DB.Exec(ctx, query, u.Name, u.Email, u.Phone, u.Role, u.PasswordHash, u.ID)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}

// ToggleActive flips the suspension flag and returns the new value
func (r *UserRepository) ToggleActive(ctx context.Context, id int) (bool, error) {
	var isActive bool
	err := r.DB.QueryRow(ctx,
		"UPDATE users SET is_active = NOT is_active, updated_at = CURRENT_TIMESTAMP WHERE id = $1 RETURNING is_active",
		id,
	).Scan(&isActive)
	return isActive, err
}
