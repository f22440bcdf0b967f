package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type BookingRequestRepository struct {
	DB *pgxpool.Pool
}

func NewBookingRequestRepository(db *pgxpool.Pool) *BookingRequestRepository {
	return &BookingRequestRepository{DB: db}
}

const bookingSelectColumns = `
	b.id, b.agent_id, b.property_type_id, b.guest_name, b.guest_phone,
	COALESCE(b.guest_email, ''), b.check_in, b.check_out, b.num_rooms, b.num_guests,
	b.list_price, b.agent_rate, b.advance_amount, b.status,
	COALESCE(b.admin_notes, ''), COALESCE(b.confirmation_number, ''),
	b.reviewed_by_user_id, b.reviewed_at, b.created_at,
	COALESCE(a.name, 'Unknown Agent'), COALESCE(a.whatsapp_number, a.phone, ''),
	COALESCE(pt.name, 'Unknown Property')
`

func scanBookingRequest(row interface{ Scan(...any) error }) (*models.BookingRequest, error) {
	b := &models.BookingRequest{}
	err := row.Scan(
		&b.ID, &b.AgentID, &b.PropertyTypeID, &b.GuestName, &b.GuestPhone,
		&b.GuestEmail, &b.CheckIn, &b.CheckOut, &b.NumRooms, &b.NumGuests,
		&b.ListPrice, &b.AgentRate, &b.AdvanceAmount, &b.Status,
		&b.AdminNotes, &b.ConfirmationNumber,
		&b.ReviewedByUserID, &b.ReviewedAt, &b.CreatedAt,
		&b.AgentName, &b.AgentPhone, &b.PropertyName,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRequestRepository) Create(ctx context.Context, b *models.BookingRequest) error {
	query := `
		INSERT INTO booking_requests (agent_id, property_type_id, guest_name, guest_phone, guest_email,
		                              check_in, check_out, num_rooms, num_guests,
		                              list_price, agent_rate, advance_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending')
		RETURNING id, status, created_at
	`

	return r.DB.QueryRow(ctx, query,
		b.AgentID, b.PropertyTypeID, b.GuestName, b.GuestPhone, b.GuestEmail,
		b.CheckIn, b.CheckOut, b.NumRooms, b.NumGuests,
		b.ListPrice, b.AgentRate, b.AdvanceAmount,
	).Scan(&b.ID, &b.Status, &b.CreatedAt)
}

func (r *BookingRequestRepository) Get(ctx context.Context, id int) (*models.BookingRequest, error) {
	query := `
		SELECT ` + bookingSelectColumns + `
		FROM booking_requests b
		LEFT JOIN agents a ON b.agent_id = a.id
		LEFT JOIN property_types pt ON b.property_type_id = pt.id
		WHERE b.id = $1
	`

	return scanBookingRequest(r.DB.QueryRow(ctx, query, id))
}

// List returns booking requests newest first, optionally filtered by status
func (r *BookingRequestRepository) List(ctx context.Context, status string) ([]*models.BookingRequest, error) {
	query := `
		SELECT ` + bookingSelectColumns + `
		FROM booking_requests b
		LEFT JOIN agents a ON b.agent_id = a.id
		LEFT JOIN property_types pt ON b.property_type_id = pt.id
		WHERE ($1 = '' OR b.status = $1)
		ORDER BY b.created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.BookingRequest
	for rows.Next() {
		b, err := scanBookingRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, b)
	}

	return requests, nil
}

// Approve performs the whole approval in one transaction: flip the request
// to approved, stamp a confirmation number, then create the guest, the
// booking room and the payment record. The payment carries the derived
// balance and status computed by the caller. If any insert fails, nothing
// is committed and the request stays pending.
func (r *BookingRequestRepository) Approve(ctx context.Context, b *models.BookingRequest, reviewerID int, note string, payment *models.Payment) (*models.BookingApprovalResult, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var confirmationSeq int64
	if err = tx.QueryRow(ctx, "SELECT nextval('confirmation_number_sequence')").Scan(&confirmationSeq); err != nil {
		return nil, err
	}
	confirmationNumber := fmt.Sprintf("BKG-%06d", confirmationSeq)

	updateQuery := `
		UPDATE booking_requests
		SET status = 'approved', confirmation_number = $1, admin_notes = $2,
		    reviewed_by_user_id = $3, reviewed_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND status = 'pending'
	`

	tag, err := tx.Exec(ctx, updateQuery, confirmationNumber, note, reviewerID, b.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotPending
	}

	guest := &models.Guest{
		Name:             b.GuestName,
		Phone:            b.GuestPhone,
		Email:            b.GuestEmail,
		BookingRequestID: b.ID,
	}
	err = tx.QueryRow(ctx,
		"INSERT INTO guests (name, phone, email, booking_request_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		guest.Name, guest.Phone, guest.Email, guest.BookingRequestID,
	).Scan(&guest.ID, &guest.CreatedAt)
	if err != nil {
		return nil, err
	}

	bookingRoom := &models.BookingRoom{
		GuestID:          guest.ID,
		BookingRequestID: b.ID,
		PropertyTypeID:   b.PropertyTypeID,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		NumRooms:         b.NumRooms,
		Status:           "confirmed",
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO booking_rooms (guest_id, booking_request_id, property_type_id, check_in, check_out, num_rooms, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		bookingRoom.GuestID, bookingRoom.BookingRequestID, bookingRoom.PropertyTypeID,
		bookingRoom.CheckIn, bookingRoom.CheckOut, bookingRoom.NumRooms, bookingRoom.Status,
	).Scan(&bookingRoom.ID, &bookingRoom.CreatedAt)
	if err != nil {
		return nil, err
	}

	var receiptSeq int64
	if err = tx.QueryRow(ctx, "SELECT nextval('receipt_number_sequence')").Scan(&receiptSeq); err != nil {
		return nil, err
	}
	payment.ReceiptNumber = fmt.Sprintf("RCP-%06d", receiptSeq)
	payment.BookingRequestID = b.ID
	payment.GuestID = guest.ID

	err = tx.QueryRow(ctx,
		`INSERT INTO payments (receipt_number, booking_request_id, guest_id, total_amount, advance_paid, balance_due, payment_status, payment_method, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`,
		payment.ReceiptNumber, payment.BookingRequestID, payment.GuestID,
		payment.TotalAmount, payment.AdvancePaid, payment.BalanceDue,
		payment.PaymentStatus, payment.PaymentMethod, payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	b.Status = models.BookingStatusApproved
	b.ConfirmationNumber = confirmationNumber
	b.AdminNotes = note
	b.ReviewedByUserID = &reviewerID

	return &models.BookingApprovalResult{
		Request:     b,
		Guest:       guest,
		BookingRoom: bookingRoom,
		Payment:     payment,
	}, nil
}

// Reject moves a pending request to rejected with the operator's note.
// The same conditional guard as Approve keeps concurrent decisions safe.
func (r *BookingRequestRepository) Reject(ctx context.Context, id int, reviewerID int, note string) error {
	query := `
		UPDATE booking_requests
		SET status = 'rejected', admin_notes = $1,
		    reviewed_by_user_id = $2, reviewed_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND status = 'pending'
	`

	tag, err := r.DB.Exec(ctx, query, note, reviewerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotPending
	}
	return nil
}

// CountByStatus powers the dashboard summary cards
func (r *BookingRequestRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.Query(ctx, "SELECT status, COUNT(*) FROM booking_requests GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, nil
}
