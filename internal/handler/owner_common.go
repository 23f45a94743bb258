package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/vietstay/hotel-booking/internal/repository" // repository holds data access layer
)

// OwnerHandler bundles repositories for owners to manage their hotels,
// room types and the two calendars the quote engine reads.
type OwnerHandler struct {
	HotelRepo     *repository.HotelRepo     // HotelRepo provides hotel persistence
	RoomTypeRepo  *repository.RoomTypeRepo  // RoomTypeRepo provides room type persistence
	InventoryRepo *repository.InventoryRepo // InventoryRepo provides per-date unit counts
	PriceRepo     *repository.PriceRepo     // PriceRepo provides per-date price overrides
}

// NewOwnerHandler constructs a new OwnerHandler and panics if any dependency is nil
func NewOwnerHandler(hotelRepo *repository.HotelRepo, roomTypeRepo *repository.RoomTypeRepo, inventoryRepo *repository.InventoryRepo, priceRepo *repository.PriceRepo) *OwnerHandler {
	if hotelRepo == nil || roomTypeRepo == nil || inventoryRepo == nil || priceRepo == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{
		HotelRepo:     hotelRepo,
		RoomTypeRepo:  roomTypeRepo,
		InventoryRepo: inventoryRepo,
		PriceRepo:     priceRepo,
	}
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64: // JWT numeric claims decode as float64
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
