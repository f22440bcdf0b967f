package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "919876543210", FormatPhoneNumber("9876543210"))
	assert.Equal(t, "919876543210", FormatPhoneNumber("+91 98765 43210"))
	assert.Equal(t, "919876543210", FormatPhoneNumber("98765-43210"))
	assert.Equal(t, "", FormatPhoneNumber(""))
}

func TestBuildLink(t *testing.T) {
	link := BuildLink("9876543210", "Hello there")
	assert.Equal(t, "https://wa.me/919876543210?text=Hello+there", link)
}

func TestBuildLinkEmptyPhone(t *testing.T) {
	assert.Equal(t, "", BuildLink("", "anything"))
}

func TestBuildLinkEscapesMessage(t *testing.T) {
	link := BuildLink("9876543210", "Balance due: 600.00 & thanks")
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link[len("https://wa.me/919876543210?text="):], "&")
}

func TestBookingApprovedMessage(t *testing.T) {
	paid := BookingApprovedMessage("Asha", "BKG-000042", 0)
	assert.Contains(t, paid, "BKG-000042")
	assert.Contains(t, paid, "Fully paid")

	partial := BookingApprovedMessage("Asha", "BKG-000042", 600)
	assert.Contains(t, partial, "600.00")
}
