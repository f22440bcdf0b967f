package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"resort-backend/internal/repositories"
	"resort-backend/internal/timeutil"
)

// ReceiptService renders payment receipts as PDFs for printing or
// WhatsApp forwarding
type ReceiptService struct {
	payments *repositories.PaymentRepository
	bookings *repositories.BookingRequestRepository
}

func NewReceiptService(payments *repositories.PaymentRepository, bookings *repositories.BookingRequestRepository) *ReceiptService {
	return &ReceiptService{payments: payments, bookings: bookings}
}

// GeneratePDF renders the receipt for one payment
func (s *ReceiptService) GeneratePDF(ctx context.Context, paymentID int) ([]byte, error) {
	payment, err := s.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	booking, err := s.bookings.Get(ctx, payment.BookingRequestID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(128, 10, "Booking Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(128, 6, fmt.Sprintf("Generated: %s", timeutil.FormatIST(timeutil.Now(), timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(128, 8, fmt.Sprintf("Receipt %s", payment.ReceiptNumber), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(64, 7, fmt.Sprintf("Guest: %s", booking.GuestName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(64, 7, fmt.Sprintf("Phone: %s", booking.GuestPhone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(64, 7, fmt.Sprintf("Property: %s", booking.PropertyName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(64, 7, fmt.Sprintf("Confirmation: %s", booking.ConfirmationNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(64, 7, fmt.Sprintf("Check-in: %s", timeutil.FormatIST(booking.CheckIn, timeutil.DateLayout)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(64, 7, fmt.Sprintf("Check-out: %s", timeutil.FormatIST(booking.CheckOut, timeutil.DateLayout)), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(64, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(64, 7, "Amount (INR)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(64, 6, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(64, 6, fmt.Sprintf("%.2f", payment.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.CellFormat(64, 6, "Paid", "1", 0, "L", false, 0, "")
	pdf.CellFormat(64, 6, fmt.Sprintf("%.2f", payment.AdvancePaid), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(64, 6, "Balance Due", "1", 0, "L", false, 0, "")
	pdf.CellFormat(64, 6, fmt.Sprintf("%.2f", payment.BalanceDue), "1", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(128, 6, fmt.Sprintf("Payment status: %s", payment.PaymentStatus), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
