package handler // handler package contains the availability quote handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vietstay/hotel-booking/internal/availability"
)

// AvailabilityHandler serves stay quotes.
type AvailabilityHandler struct {
	Svc *availability.Service
}

// NewAvailabilityHandler wires the quote service; it panics on nil so
// miswiring is caught at startup.
func NewAvailabilityHandler(svc *availability.Service) *AvailabilityHandler {
	if svc == nil {
		panic("nil availability service")
	}
	return &AvailabilityHandler{Svc: svc}
}

// Quote handles POST /v1/availability/quote.  Range validation failures
// come back as 400 with the exact reason; storage failures are a generic
// 500 so internals never leak to the caller.
func (h *AvailabilityHandler) Quote(c echo.Context) error {
	var req availability.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	req.HotelID = strings.TrimSpace(req.HotelID)
	if req.HotelID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "hotelId is required"})
	}
	if req.Guests < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "guests must be >= 1"})
	}
	quote, err := h.Svc.Quote(c.Request().Context(), req)
	if err != nil {
		var rangeErr *availability.InvalidRangeError
		if errors.As(err, &rangeErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": rangeErr.Reason})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "quote failed"})
	}
	return c.JSON(http.StatusOK, quote)
}
