package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/vietstay/hotel-booking/internal/config"
	"github.com/vietstay/hotel-booking/internal/handler"
	"github.com/vietstay/hotel-booking/internal/middleware"
	"github.com/vietstay/hotel-booking/internal/obs"
)

// RegisterPublic registers the unauthenticated browse, search and quote
// endpoints.  The browse endpoints sit behind the Redis response cache;
// the quote endpoint does NOT, because the quote engine runs its own
// keyed cache with stay-specific TTL semantics.  Everything public shares
// the token-bucket rate limiter.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, s *handler.SearchHandler, q *handler.AvailabilityHandler, rdb *redis.Client, metrics *obs.Metrics) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, metrics)
	respCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	browse := e.Group("/v1", limiter, respCache)
	browse.GET("/hotels", p.ListHotels)
	browse.GET("/hotels/:id", p.GetHotel)
	browse.GET("/hotels/:id/room-types", p.ListRoomTypes)

	e.GET("/v1/search/hotels", s.SearchHotels, limiter)
	e.POST("/v1/availability/quote", q.Quote, limiter)
}
