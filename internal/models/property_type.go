package models

import "time"

type PropertyType struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	TotalRooms      int       `json:"total_rooms"`
	RoomPrefix      string    `json:"room_prefix"`
	CostPerNight    float64   `json:"cost_per_night"`
	ExtraPersonCost float64   `json:"extra_person_cost"`
	CheckInTime     string    `json:"check_in_time"`
	CheckOutTime    string    `json:"check_out_time"`
	MapLink         string    `json:"map_link"`
	Rules           string    `json:"rules"`
	WifiDetails     string    `json:"wifi_details"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Room struct {
	ID             int       `json:"id"`
	PropertyTypeID int       `json:"property_type_id"`
	RoomNumber     string    `json:"room_number"`
	IsAvailable    bool      `json:"is_available"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreatePropertyTypeRequest represents the request body for creating a property type.
// Rooms are generated once at creation from RoomPrefix and TotalRooms.
type CreatePropertyTypeRequest struct {
	Name            string  `json:"name"`
	TotalRooms      int     `json:"total_rooms"`
	RoomPrefix      string  `json:"room_prefix"`
	CostPerNight    float64 `json:"cost_per_night"`
	ExtraPersonCost float64 `json:"extra_person_cost"`
	CheckInTime     string  `json:"check_in_time"`
	CheckOutTime    string  `json:"check_out_time"`
	MapLink         string  `json:"map_link"`
	Rules           string  `json:"rules"`
	WifiDetails     string  `json:"wifi_details"`
}

// UpdatePropertyTypeRequest represents the request body for updating a property type.
// Room count and prefix are immutable after creation.
type UpdatePropertyTypeRequest struct {
	Name            string  `json:"name"`
	CostPerNight    float64 `json:"cost_per_night"`
	ExtraPersonCost float64 `json:"extra_person_cost"`
	CheckInTime     string  `json:"check_in_time"`
	CheckOutTime    string  `json:"check_out_time"`
	MapLink         string  `json:"map_link"`
	Rules           string  `json:"rules"`
	WifiDetails     string  `json:"wifi_details"`
}
