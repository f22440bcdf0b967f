// Package whatsapp builds wa.me deep links for operator-initiated messages.
// Opening the link is a manual, human step; delivery is never confirmed.
package whatsapp

import (
	"fmt"
	"net/url"
)

const baseURL = "https://wa.me/"

// BuildLink returns a WhatsApp deep link that opens a chat with the given
// phone number and the message text pre-filled. An empty phone yields an
// empty link so callers can skip rendering the action.
func BuildLink(phone, text string) string {
	digits := FormatPhoneNumber(phone)
	if digits == "" {
		return ""
	}
	return baseURL + digits + "?text=" + url.QueryEscape(text)
}

// FormatPhoneNumber strips non-digits and prefixes the 91 country code for
// bare 10-digit Indian numbers
func FormatPhoneNumber(phone string) string {
	cleaned := ""
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			cleaned += string(c)
		}
	}

	if len(cleaned) == 10 {
		return "91" + cleaned
	}
	return cleaned
}

// AgentApprovedMessage is the pre-filled text for an agent approval
func AgentApprovedMessage(agentName string, commissionPercent float64) string {
	return fmt.Sprintf(
		"Hello %s, your travel agent account has been approved. Your commission rate is %.1f%%. You can now submit booking requests.",
		agentName, commissionPercent,
	)
}

// AgentRejectedMessage is the pre-filled text for an agent rejection
func AgentRejectedMessage(agentName, reason string) string {
	return fmt.Sprintf(
		"Hello %s, we are unable to approve your travel agent account at this time. Reason: %s",
		agentName, reason,
	)
}

// BookingApprovedMessage is the pre-filled text for a booking confirmation
func BookingApprovedMessage(guestName, confirmationNumber string, balanceDue float64) string {
	if balanceDue <= 0 {
		return fmt.Sprintf(
			"Booking for %s is confirmed. Confirmation number: %s. Fully paid.",
			guestName, confirmationNumber,
		)
	}
	return fmt.Sprintf(
		"Booking for %s is confirmed. Confirmation number: %s. Balance due at check-in: %.2f.",
		guestName, confirmationNumber, balanceDue,
	)
}

// BookingRejectedMessage is the pre-filled text for a booking rejection
func BookingRejectedMessage(guestName, reason string) string {
	return fmt.Sprintf(
		"Booking request for %s could not be approved. Reason: %s",
		guestName, reason,
	)
}
