package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"resort-backend/internal/models"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

func (r *OnlineTransactionRepository) Create(ctx context.Context, t *models.OnlineTransaction) error {
	query := `
		INSERT INTO online_transactions (razorpay_order_id, booking_request_id, agent_id, amount, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING id, status, created_at
	`

	return r.DB.QueryRow(ctx, query,
		t.RazorpayOrderID, t.BookingRequestID, t.AgentID, t.Amount,
	).Scan(&t.ID, &t.Status, &t.CreatedAt)
}

func (r *OnlineTransactionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error) {
	query := `
		SELECT t.id, t.razorpay_order_id, COALESCE(t.razorpay_payment_id, ''),
		       COALESCE(t.razorpay_signature, ''), t.booking_request_id, t.agent_id,
		       COALESCE(a.name, ''), t.amount, COALESCE(t.payment_method, ''),
		       COALESCE(t.vpa, ''), t.status, COALESCE(t.failure_reason, ''),
		       t.created_at, t.completed_at
		FROM online_transactions t
		LEFT JOIN agents a ON t.agent_id = a.id
		WHERE t.razorpay_order_id = $1
	`

	t := &models.OnlineTransaction{}
	err := r.DB.QueryRow(ctx, query, orderID).Scan(
		&t.ID, &t.RazorpayOrderID, &t.RazorpayPaymentID,
		&t.RazorpaySignature, &t.BookingRequestID, &t.AgentID,
		&t.AgentName, &t.Amount, &t.PaymentMethod,
		&t.VPA, &t.Status, &t.FailureReason,
		&t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// MarkSuccessAndFold records the verified payment and adds the collected
// amount to the still-pending booking request, atomically. Either row
// having already left pending returns ErrNotPending with nothing written.
func (r *OnlineTransactionRepository) MarkSuccessAndFold(ctx context.Context, orderID, paymentID, signature, method, vpa string, bookingRequestID int, amount float64) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE online_transactions
		SET razorpay_payment_id = $1, razorpay_signature = $2, payment_method = $3,
		    vpa = $4, status = 'success', completed_at = CURRENT_TIMESTAMP
		WHERE razorpay_order_id = $5 AND status = 'pending'
	`, paymentID, signature, method, vpa, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotPending
	}

	tag, err = tx.Exec(ctx,
		"UPDATE booking_requests SET advance_amount = advance_amount + $1 WHERE id = $2 AND status = 'pending'",
		amount, bookingRequestID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotPending
	}

	return tx.Commit(ctx)
}

func (r *OnlineTransactionRepository) MarkFailed(ctx context.Context, orderID, reason string) error {
	query := `
		UPDATE online_transactions
		SET status = 'failed', failure_reason = $1, completed_at = CURRENT_TIMESTAMP
		WHERE razorpay_order_id = $2 AND status = 'pending'
	`

	_, err := r.DB.Exec(ctx, query, reason, orderID)
	return err
}

func (r *OnlineTransactionRepository) List(ctx context.Context, status string) ([]*models.OnlineTransaction, error) {
	query := `
		SELECT t.id, t.razorpay_order_id, COALESCE(t.razorpay_payment_id, ''),
		       COALESCE(t.razorpay_signature, ''), t.booking_request_id, t.agent_id,
		       COALESCE(a.name, ''), t.amount, COALESCE(t.payment_method, ''),
		       COALESCE(t.vpa, ''), t.status, COALESCE(t.failure_reason, ''),
		       t.created_at, t.completed_at
		FROM online_transactions t
		LEFT JOIN agents a ON t.agent_id = a.id
		WHERE ($1 = '' OR t.status = $1)
		ORDER BY t.created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.OnlineTransaction
	for rows.Next() {
		t := &models.OnlineTransaction{}
		err := rows.Scan(
			&t.ID, &t.RazorpayOrderID, &t.RazorpayPaymentID,
			&t.RazorpaySignature, &t.BookingRequestID, &t.AgentID,
			&t.AgentName, &t.Amount, &t.PaymentMethod,
			&t.VPA, &t.Status, &t.FailureReason,
			&t.CreatedAt, &t.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
