package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/vietstay/hotel-booking/internal/handler"
	"github.com/vietstay/hotel-booking/internal/middleware"
)

// RegisterOwner registers OWNER-scoped endpoints under /v1.
// All routes require a valid JWT and OWNER role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)

	// ---- Hotels ----
	g.POST("/hotels", o.CreateHotel)
	g.GET("/hotels/mine", o.ListHotels)
	g.PUT("/hotels/:id", o.UpdateHotel)
	g.PATCH("/hotels/:id", o.UpdateHotel)
	g.DELETE("/hotels/:id", o.DeleteHotel)
	// NOTE: public listing and detail live on the browse API; the owner
	// surface only carries /hotels/mine to avoid clashing with GET /v1/hotels.

	// ---- Room types ----
	g.POST("/hotels/:id/room-types", o.CreateRoomType)
	g.PUT("/room-types/:id", o.UpdateRoomType)
	g.PATCH("/room-types/:id", o.UpdateRoomType)
	g.DELETE("/room-types/:id", o.DeleteRoomType)

	// ---- Calendars ----
	g.PUT("/room-types/:id/inventory", o.UpsertInventory)
	g.PUT("/room-types/:id/prices", o.UpsertPrices)
}
