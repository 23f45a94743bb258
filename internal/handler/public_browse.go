package handler // handler package contains public hotel browse handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vietstay/hotel-booking/internal/repository"
)

// PublicHandler serves the unauthenticated hotel catalogue.
type PublicHandler struct {
	HotelRepo    *repository.HotelRepo
	RoomTypeRepo *repository.RoomTypeRepo
}

func NewPublicHandler(hotels *repository.HotelRepo, roomTypes *repository.RoomTypeRepo) *PublicHandler {
	if hotels == nil || roomTypes == nil {
		panic("nil repo passed to NewPublicHandler")
	}
	return &PublicHandler{HotelRepo: hotels, RoomTypeRepo: roomTypes}
}

// ListHotels handles GET /v1/hotels with page/limit query params.
func (h *PublicHandler) ListHotels(c echo.Context) error {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	hotels, total, err := h.HotelRepo.ListPublic(c.Request().Context(), page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data":  hotels,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetHotel handles GET /v1/hotels/:id.
func (h *PublicHandler) GetHotel(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	hotel, err := h.HotelRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, hotel)
}

// ListRoomTypes handles GET /v1/hotels/:id/room-types.
func (h *PublicHandler) ListRoomTypes(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if _, err := h.HotelRepo.GetByID(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	roomTypes, err := h.RoomTypeRepo.ListByHotel(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, roomTypes)
}

// queryInt reads an integer query param, falling back on absence or junk.
func queryInt(c echo.Context, name string, def int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
