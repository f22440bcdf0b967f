package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"resort-backend/internal/models"
)

func TestDeriveBookingPaymentFullyCovered(t *testing.T) {
	balance, status := DeriveBookingPayment(1000, 1000)

	assert.Equal(t, 0.0, balance)
	assert.Equal(t, models.PaymentStatusPaid, status)
}

func TestDeriveBookingPaymentPartialAdvance(t *testing.T) {
	balance, status := DeriveBookingPayment(1000, 400)

	assert.Equal(t, 600.0, balance)
	assert.Equal(t, models.PaymentStatusPartial, status)
}

func TestDeriveBookingPaymentZeroAdvance(t *testing.T) {
	balance, status := DeriveBookingPayment(2500, 0)

	assert.Equal(t, 2500.0, balance)
	assert.Equal(t, models.PaymentStatusPartial, status)
}

func TestBookingRejectRequiresNote(t *testing.T) {
	// Nil repositories: the validation must fail before any write is
	// attempted, so no repository call may happen
	svc := NewBookingService(nil, nil)

	result, err := svc.Reject(context.Background(), 1, 1, "")
	assert.Error(t, err)
	assert.Nil(t, result)

	result, err = svc.Reject(context.Background(), 1, 1, "   ")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestDeriveBookingPaymentNeverNegative(t *testing.T) {
	// Advance should never exceed the rate, but the derivation clamps
	// anyway rather than producing a negative balance
	balance, status := DeriveBookingPayment(500, 700)

	assert.Equal(t, 0.0, balance)
	assert.Equal(t, models.PaymentStatusPaid, status)
}
