package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resort-backend/internal/metrics"
	"resort-backend/internal/models"
	"resort-backend/internal/repositories"
	"resort-backend/internal/timeutil"
	"resort-backend/internal/whatsapp"
)

type BookingService struct {
	repo          *repositories.BookingRequestRepository
	notifications *repositories.NotificationRepository
}

func NewBookingService(repo *repositories.BookingRequestRepository, notifications *repositories.NotificationRepository) *BookingService {
	return &BookingService{repo: repo, notifications: notifications}
}

// DeriveBookingPayment computes the payment record created on approval.
// The balance is the agent rate minus the advance already collected; a
// fully covered rate means paid, anything outstanding means partial.
// The advance never exceeds the rate, so the balance is never negative.
func DeriveBookingPayment(agentRate, advanceAmount float64) (balanceDue float64, status string) {
	balanceDue = agentRate - advanceAmount
	if balanceDue <= 0 {
		return 0, models.PaymentStatusPaid
	}
	return balanceDue, models.PaymentStatusPartial
}

func (s *BookingService) List(ctx context.Context, status string) ([]*models.BookingRequest, error) {
	return s.repo.List(ctx, status)
}

func (s *BookingService) Get(ctx context.Context, id int) (*models.BookingRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingRequest, error) {
	if strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.GuestPhone) == "" {
		return nil, fmt.Errorf("guest name and phone are required")
	}

	checkIn, err := timeutil.ParseInIST(timeutil.DateLayout, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in date: %w", err)
	}
	checkOut, err := timeutil.ParseInIST(timeutil.DateLayout, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out date: %w", err)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("check_out must be after check_in")
	}
	if req.AdvanceAmount > req.AgentRate {
		return nil, fmt.Errorf("advance cannot exceed the agent rate")
	}
	if req.NumRooms <= 0 {
		req.NumRooms = 1
	}
	if req.NumGuests <= 0 {
		req.NumGuests = 1
	}

	b := &models.BookingRequest{
		AgentID:        req.AgentID,
		PropertyTypeID: req.PropertyTypeID,
		GuestName:      strings.TrimSpace(req.GuestName),
		GuestPhone:     strings.TrimSpace(req.GuestPhone),
		GuestEmail:     req.GuestEmail,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumRooms:       req.NumRooms,
		NumGuests:      req.NumGuests,
		ListPrice:      req.ListPrice,
		AgentRate:      req.AgentRate,
		AdvanceAmount:  req.AdvanceAmount,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Approve runs the whole approval: derive the payment from the request's
// commercial terms, commit the transition plus the guest, booking room and
// payment records in one transaction, then notify the agent.
func (s *BookingService) Approve(ctx context.Context, id, reviewerID int, note string) (*models.BookingApprovalResult, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	balanceDue, paymentStatus := DeriveBookingPayment(b.AgentRate, b.AdvanceAmount)
	payment := &models.Payment{
		TotalAmount:   b.AgentRate,
		AdvancePaid:   b.AdvanceAmount,
		BalanceDue:    balanceDue,
		PaymentStatus: paymentStatus,
	}

	result, err := s.repo.Approve(ctx, b, reviewerID, note, payment)
	if err != nil {
		metrics.BookingTransitionsTotal.WithLabelValues("approve_failed").Inc()
		return nil, err
	}
	metrics.BookingTransitionsTotal.WithLabelValues("approved").Inc()

	s.notify(ctx, b.AgentID, models.NotificationTypeBookingApproved, "Booking Confirmed",
		fmt.Sprintf("Booking for %s is confirmed. Confirmation number: %s.", b.GuestName, result.Request.ConfirmationNumber), &b.ID)

	result.WhatsAppLink = whatsapp.BuildLink(b.AgentPhone,
		whatsapp.BookingApprovedMessage(b.GuestName, result.Request.ConfirmationNumber, payment.BalanceDue))

	log.Printf("[Booking] Approved request %d (%s, %s) by user %d", b.ID, b.GuestName, result.Request.ConfirmationNumber, reviewerID)
	return result, nil
}

// Reject requires an explanation; a blank note is refused before anything
// touches the database.
func (s *BookingService) Reject(ctx context.Context, id, reviewerID int, note string) (*models.BookingRejectionResult, error) {
	if strings.TrimSpace(note) == "" {
		return nil, fmt.Errorf("a rejection note is required")
	}

	if err := s.repo.Reject(ctx, id, reviewerID, note); err != nil {
		metrics.BookingTransitionsTotal.WithLabelValues("reject_failed").Inc()
		return nil, err
	}
	metrics.BookingTransitionsTotal.WithLabelValues("rejected").Inc()

	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, b.AgentID, models.NotificationTypeBookingRejected, "Booking Not Approved",
		fmt.Sprintf("Booking request for %s could not be approved. Reason: %s", b.GuestName, note), &b.ID)

	log.Printf("[Booking] Rejected request %d by user %d", b.ID, reviewerID)
	return &models.BookingRejectionResult{
		Request:      b,
		WhatsAppLink: whatsapp.BuildLink(b.AgentPhone, whatsapp.BookingRejectedMessage(b.GuestName, note)),
	}, nil
}

func (s *BookingService) CountByStatus(ctx context.Context) (map[string]int, error) {
	return s.repo.CountByStatus(ctx)
}

func (s *BookingService) notify(ctx context.Context, agentID int, notifType, title, message string, relatedID *int) {
	n := &models.Notification{
		AgentID:         agentID,
		Type:            notifType,
		Title:           title,
		Message:         message,
		RelatedEntityID: relatedID,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		log.Printf("[Booking] Failed to write notification for agent %d: %v", agentID, err)
		return
	}
	metrics.NotificationsCreatedTotal.Inc()
}
