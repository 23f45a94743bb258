package handler // handler package contains owner-specific hotel handlers

import (
	"net/http" // http provides status code constants
	"strings"  // strings offers trimming utilities

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/vietstay/hotel-booking/internal/model"
	"github.com/vietstay/hotel-booking/internal/repository"
)

type hotelBody struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Stars        uint8    `json:"stars"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Amenities    []string `json:"amenities"`
	ThumbnailURL string   `json:"thumbnail_url"`
}

func (b *hotelBody) validate() string {
	b.Name = strings.TrimSpace(b.Name)
	b.City = strings.TrimSpace(b.City)
	b.Country = strings.TrimSpace(b.Country)
	if b.Name == "" {
		return "name is required"
	}
	if b.City == "" || b.Country == "" {
		return "city and country are required"
	}
	if b.Stars < 1 || b.Stars > 5 {
		return "stars must be between 1 and 5"
	}
	return ""
}

// CreateHotel handles POST /v1/hotels and creates a hotel for the authenticated owner
func (h *OwnerHandler) CreateHotel(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var body hotelBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	hotel := &model.Hotel{
		OwnerID:      ownerID,
		Name:         body.Name,
		Address:      strings.TrimSpace(body.Address),
		City:         body.City,
		Country:      body.Country,
		Stars:        body.Stars,
		Latitude:     body.Latitude,
		Longitude:    body.Longitude,
		Amenities:    body.Amenities,
		ThumbnailURL: strings.TrimSpace(body.ThumbnailURL),
	}
	if err := h.HotelRepo.Create(c.Request().Context(), hotel); err != nil {
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, map[string]string{"error": "hotel name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create hotel"})
	}
	return c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel handles PUT /v1/hotels/:id and rewrites the hotel's attributes
func (h *OwnerHandler) UpdateHotel(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body hotelBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	hotel := &model.Hotel{
		ID:           id,
		Name:         body.Name,
		Address:      strings.TrimSpace(body.Address),
		City:         body.City,
		Country:      body.Country,
		Stars:        body.Stars,
		Latitude:     body.Latitude,
		Longitude:    body.Longitude,
		Amenities:    body.Amenities,
		ThumbnailURL: strings.TrimSpace(body.ThumbnailURL),
	}
	if err := h.HotelRepo.Update(c.Request().Context(), hotel, ownerID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	updated, err := h.HotelRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// ListHotels handles GET /v1/hotels/mine and returns all hotels owned by the authenticated user
func (h *OwnerHandler) ListHotels(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	items, err := h.HotelRepo.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// DeleteHotel handles DELETE /v1/hotels/:id
func (h *OwnerHandler) DeleteHotel(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.HotelRepo.Delete(c.Request().Context(), id, ownerID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
