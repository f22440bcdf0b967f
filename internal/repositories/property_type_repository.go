package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type PropertyTypeRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyTypeRepository(db *pgxpool.Pool) *PropertyTypeRepository {
	return &PropertyTypeRepository{DB: db}
}

// CreateWithRooms inserts the property type and its generated room rows
// in a single transaction so a partially created allotment never survives.
func (r *PropertyTypeRepository) CreateWithRooms(ctx context.Context, pt *models.PropertyType, roomNumbers []string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO property_types (name, total_rooms, room_prefix, cost_per_night, extra_person_cost,
		                            check_in_time, check_out_time, map_link, rules, wifi_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		pt.Name, pt.TotalRooms, pt.RoomPrefix, pt.CostPerNight, pt.ExtraPersonCost,
		pt.CheckInTime, pt.CheckOutTime, pt.MapLink, pt.Rules, pt.WifiDetails,
	).Scan(&pt.ID, &pt.CreatedAt, &pt.UpdatedAt)
	if err != nil {
		return err
	}

	for _, number := range roomNumbers {
		_, err = tx.Exec(ctx,
			"INSERT INTO rooms (property_type_id, room_number, is_available) VALUES ($1, $2, TRUE)",
			pt.ID, number,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PropertyTypeRepository) Get(ctx context.Context, id int) (*models.PropertyType, error) {
	query := `
		SELECT id, name, total_rooms, room_prefix, cost_per_night, extra_person_cost,
		       COALESCE(check_in_time, ''), COALESCE(check_out_time, ''),
		       COALESCE(map_link, ''), COALESCE(rules, ''), COALESCE(wifi_details, ''),
		       created_at, updated_at
		FROM property_types
		WHERE id = $1
	`

	pt := &models.PropertyType{}
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&pt.ID, &pt.Name, &pt.TotalRooms, &pt.RoomPrefix, &pt.CostPerNight, &pt.ExtraPersonCost,
		&pt.CheckInTime, &pt.CheckOutTime, &pt.MapLink, &pt.Rules, &pt.WifiDetails,
		&pt.CreatedAt, &pt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return pt, nil
}

func (r *PropertyTypeRepository) List(ctx context.Context) ([]*models.PropertyType, error) {
	query := `
		SELECT id, name, total_rooms, room_prefix, cost_per_night, extra_person_cost,
		       COALESCE(check_in_time, ''), COALESCE(check_out_time, ''),
		       COALESCE(map_link, ''), COALESCE(rules, ''), COALESCE(wifi_details, ''),
		       created_at, updated_at
		FROM property_types
		ORDER BY name
	`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.PropertyType
	for rows.Next() {
		pt := &models.PropertyType{}
		err := rows.Scan(
			&pt.ID, &pt.Name, &pt.TotalRooms, &pt.RoomPrefix, &pt.CostPerNight, &pt.ExtraPersonCost,
			&pt.CheckInTime, &pt.CheckOutTime, &pt.MapLink, &pt.Rules, &pt.WifiDetails,
			&pt.CreatedAt, &pt.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, pt)
	}

	return types, nil
}

// Update never touches room_prefix or total_rooms; the room inventory is
// fixed at creation time.
func (r *PropertyTypeRepository) Update(ctx context.Context, pt *models.PropertyType) error {
	query := `
		UPDATE property_types
		SET name = $1, cost_per_night = $2, extra_person_cost = $3,
		    check_in_time = $4, check_out_time = $5, map_link = $6,
		    rules = $7, wifi_details = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
	`

	_, err := r.DB.Exec(ctx, query,
		pt.Name, pt.CostPerNight, pt.ExtraPersonCost,
		pt.CheckInTime, pt.CheckOutTime, pt.MapLink,
		pt.Rules, pt.WifiDetails, pt.ID,
	)
	return err
}

// Delete removes the property type; rooms cascade
func (r *PropertyTypeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM property_types WHERE id = $1", id)
	return err
}

func (r *PropertyTypeRepository) ListRooms(ctx context.Context, propertyTypeID int) ([]*models.Room, error) {
	query := `
		SELECT id, property_type_id, room_number, is_available, created_at
		FROM rooms
		WHERE property_type_id = $1
		ORDER BY id
	`

	rows, err := r.DB.Query(ctx, query, propertyTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		rm := &models.Room{}
		err := rows.Scan(&rm.ID, &rm.PropertyTypeID, &rm.RoomNumber, &rm.IsAvailable, &rm.CreatedAt)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}

	return rooms, nil
}
