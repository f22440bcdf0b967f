package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentSelectColumns = `
	p.id, p.receipt_number, p.booking_request_id, p.guest_id,
	COALESCE(g.name, 'Unknown Guest'), p.total_amount, p.advance_paid, p.balance_due,
	p.payment_status, COALESCE(p.payment_method, ''), COALESCE(p.notes, ''),
	p.created_at, p.updated_at
`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(
		&p.ID, &p.ReceiptNumber, &p.BookingRequestID, &p.GuestID,
		&p.GuestName, &p.TotalAmount, &p.AdvancePaid, &p.BalanceDue,
		&p.PaymentStatus, &p.PaymentMethod, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	query := `
		SELECT ` + paymentSelectColumns + `
		FROM payments p
		LEFT JOIN guests g ON p.guest_id = g.id
		WHERE p.id = $1
	`

	return scanPayment(r.DB.QueryRow(ctx, query, id))
}

func (r *PaymentRepository) GetByBookingRequest(ctx context.Context, bookingRequestID int) (*models.Payment, error) {
	query := `
		SELECT ` + paymentSelectColumns + `
		FROM payments p
		LEFT JOIN guests g ON p.guest_id = g.id
		WHERE p.booking_request_id = $1
	`

	return scanPayment(r.DB.QueryRow(ctx, query, bookingRequestID))
}

// List returns payments, optionally filtered by payment status
func (r *PaymentRepository) List(ctx context.Context, status string) ([]*models.Payment, error) {
	query := `
		SELECT ` + paymentSelectColumns + `
		FROM payments p
		LEFT JOIN guests g ON p.guest_id = g.id
		WHERE ($1 = '' OR p.payment_status = $1)
		ORDER BY p.created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// Settle applies an amount against the outstanding balance. The balance
// never goes below zero and the status flips to paid when it reaches zero.
func (r *PaymentRepository) Settle(ctx context.Context, id int, amount float64, method, notes string) (*models.Payment, error) {
	query := `
		UPDATE payments
		SET advance_paid = advance_paid + $1,
		    balance_due = GREATEST(balance_due - $1, 0),
		    payment_status = CASE WHEN balance_due - $1 <= 0 THEN 'paid' ELSE 'partial' END,
		    payment_method = COALESCE(NULLIF($2, ''), payment_method),
		    notes = COALESCE(NULLIF($3, ''), notes),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING id, receipt_number, booking_request_id, guest_id, total_amount,
		          advance_paid, balance_due, payment_status,
		          COALESCE(payment_method, ''), COALESCE(notes, ''), created_at, updated_at
	`

	p := &models.Payment{}
	err := r.DB.QueryRow(ctx, query, amount, method, notes, id).Scan(
		&p.ID, &p.ReceiptNumber, &p.BookingRequestID, &p.GuestID, &p.TotalAmount,
		&p.AdvancePaid, &p.BalanceDue, &p.PaymentStatus,
		&p.PaymentMethod, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}
