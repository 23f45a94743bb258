package model

import "time"

// RoomType is a bookable category within a hotel (e.g. "Deluxe Double"),
// not an individual physical room.  BasePrice is the default nightly rate
// in VND; date-specific overrides live in the price calendar.  The quote
// engine treats room types as read-only input.
//
// Fields:
//
//	ID        - UUID primary key.
//	HotelID   - owning hotel.
//	Name      - display name of the category.
//	Capacity  - maximum number of guests per unit.
//	BasePrice - default nightly price in VND.
//	CreatedAt - creation timestamp.
//	UpdatedAt - last update timestamp.
type RoomType struct {
	ID        string    `json:"id"`         // room_types.id (UUID)
	HotelID   string    `json:"hotel_id"`   // room_types.hotel_id
	Name      string    `json:"name"`       // room_types.name
	Capacity  int       `json:"capacity"`   // room_types.capacity
	BasePrice int64     `json:"base_price"` // room_types.base_price (VND)
	CreatedAt time.Time `json:"created_at"` // room_types.created_at
	UpdatedAt time.Time `json:"updated_at"` // room_types.updated_at
}
