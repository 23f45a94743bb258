package handler // handler package contains owner calendar (inventory/price) handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vietstay/hotel-booking/internal/model"
	"github.com/vietstay/hotel-booking/internal/repository"
)

// maxCalendarEntries caps one bulk upsert at a year of dates.
const maxCalendarEntries = 366

type inventoryEntry struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Available int    `json:"available"`
}

type priceEntry struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Price int64  `json:"price"`
}

// UpsertInventory handles PUT /v1/room-types/:id/inventory.  The body is a
// batch of (date, available) entries written in one statement; existing
// rows for the same dates are overwritten.  Quotes already cached keep
// serving the old counts until their TTL runs out; there is no cache
// eviction on writes.
func (h *OwnerHandler) UpsertInventory(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	roomTypeID := strings.TrimSpace(c.Param("id"))
	if roomTypeID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Entries []inventoryEntry `json:"entries"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if len(body.Entries) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "entries required"})
	}
	if len(body.Entries) > maxCalendarEntries {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "too many entries"})
	}
	if _, err := h.RoomTypeRepo.GetOwned(c.Request().Context(), roomTypeID, ownerID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "room type not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	rows := make([]model.Inventory, 0, len(body.Entries))
	for _, e := range body.Entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date: " + e.Date})
		}
		if e.Available < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "available must be >= 0"})
		}
		rows = append(rows, model.Inventory{RoomTypeID: roomTypeID, Date: d, Available: e.Available})
	}
	if err := h.InventoryRepo.UpsertBulk(c.Request().Context(), rows); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "upsert failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{"updated": len(rows)})
}

// UpsertPrices handles PUT /v1/room-types/:id/prices with a batch of
// (date, price) override entries.  Dates not listed keep the base price.
func (h *OwnerHandler) UpsertPrices(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	roomTypeID := strings.TrimSpace(c.Param("id"))
	if roomTypeID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Entries []priceEntry `json:"entries"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if len(body.Entries) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "entries required"})
	}
	if len(body.Entries) > maxCalendarEntries {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "too many entries"})
	}
	if _, err := h.RoomTypeRepo.GetOwned(c.Request().Context(), roomTypeID, ownerID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "room type not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	rows := make([]model.PriceCalendar, 0, len(body.Entries))
	for _, e := range body.Entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date: " + e.Date})
		}
		if e.Price < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "price must be >= 0"})
		}
		rows = append(rows, model.PriceCalendar{RoomTypeID: roomTypeID, Date: d, Price: e.Price})
	}
	if err := h.PriceRepo.UpsertBulk(c.Request().Context(), rows); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "upsert failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{"updated": len(rows)})
}
