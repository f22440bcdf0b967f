package models

import "time"

// Guest is created as a derived record when a booking request is approved
type Guest struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email,omitempty"`
	BookingRequestID int       `json:"booking_request_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// BookingRoom links the derived guest to the booked property for the stay window
type BookingRoom struct {
	ID               int       `json:"id"`
	GuestID          int       `json:"guest_id"`
	BookingRequestID int       `json:"booking_request_id"`
	PropertyTypeID   int       `json:"property_type_id"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	NumRooms         int       `json:"num_rooms"`
	Status           string    `json:"status"` // confirmed, checked_in, checked_out
	CreatedAt        time.Time `json:"created_at"`
}
