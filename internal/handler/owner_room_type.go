package handler // handler package contains owner-specific room type handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vietstay/hotel-booking/internal/model"
	"github.com/vietstay/hotel-booking/internal/repository"
)

type roomTypeBody struct {
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	BasePrice int64  `json:"base_price"`
}

func (b *roomTypeBody) validate() string {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return "name is required"
	}
	if b.Capacity < 1 {
		return "capacity must be >= 1"
	}
	if b.BasePrice < 0 {
		return "base_price must be >= 0"
	}
	return ""
}

// CreateRoomType handles POST /v1/hotels/:id/room-types
func (h *OwnerHandler) CreateRoomType(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	hotelID := strings.TrimSpace(c.Param("id"))
	if hotelID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body roomTypeBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	// Ownership gate before any write
	if _, err := h.HotelRepo.GetByIDAndOwner(c.Request().Context(), hotelID, ownerID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	rt := &model.RoomType{
		HotelID:   hotelID,
		Name:      body.Name,
		Capacity:  body.Capacity,
		BasePrice: body.BasePrice,
	}
	if err := h.RoomTypeRepo.Create(c.Request().Context(), rt); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create room type"})
	}
	return c.JSON(http.StatusCreated, rt)
}

// UpdateRoomType handles PUT /v1/room-types/:id
func (h *OwnerHandler) UpdateRoomType(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body roomTypeBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	rt, err := h.RoomTypeRepo.GetOwned(c.Request().Context(), id, ownerID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "room type not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	rt.Name = body.Name
	rt.Capacity = body.Capacity
	rt.BasePrice = body.BasePrice
	if err := h.RoomTypeRepo.Update(c.Request().Context(), rt); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rt)
}

// DeleteRoomType handles DELETE /v1/room-types/:id
func (h *OwnerHandler) DeleteRoomType(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if _, err := h.RoomTypeRepo.GetOwned(c.Request().Context(), id, ownerID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "room type not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	if err := h.RoomTypeRepo.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
