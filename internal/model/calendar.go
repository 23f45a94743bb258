package model

import "time"

// Inventory records how many sellable units of a room type exist on a
// specific calendar date.  The quote engine only reads these rows; a
// separate inventory-management path (owner bulk upserts today, bookings
// later) owns their lifecycle.  A missing row means zero units.
type Inventory struct {
	RoomTypeID string    `json:"room_type_id"` // inventories.room_type_id
	Date       time.Time `json:"date"`         // inventories.date (DATE, midnight UTC)
	Available  int       `json:"available"`    // inventories.available
}

// PriceCalendar is a per-date nightly price that supersedes the room type's
// BasePrice, used for seasonal pricing.  Absence of a row for a date means
// the base price applies.
type PriceCalendar struct {
	RoomTypeID string    `json:"room_type_id"` // price_calendar.room_type_id
	Date       time.Time `json:"date"`         // price_calendar.date (DATE, midnight UTC)
	Price      int64     `json:"price"`        // price_calendar.price (VND)
}
