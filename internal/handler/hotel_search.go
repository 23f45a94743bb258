package handler // handler package contains the hotel search handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vietstay/hotel-booking/internal/obs"
	"github.com/vietstay/hotel-booking/internal/search"
)

// SearchHandler fronts the Meilisearch hotels index.  Client may be nil
// when no search host is configured; requests then get a 503.
type SearchHandler struct {
	Client  *search.Client
	Metrics *obs.Metrics
}

func NewSearchHandler(client *search.Client, metrics *obs.Metrics) *SearchHandler {
	return &SearchHandler{Client: client, Metrics: metrics}
}

// SearchHotels handles GET /v1/search/hotels.
func (h *SearchHandler) SearchHotels(c echo.Context) error {
	if h.Metrics != nil {
		h.Metrics.IncSearchRequests()
	}
	if h.Client == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "search unavailable"})
	}

	q := search.Query{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		City:     strings.TrimSpace(c.QueryParam("city")),
		Country:  strings.TrimSpace(c.QueryParam("country")),
		StarsMin: queryInt(c, "stars_min", 0),
		StarsMax: queryInt(c, "stars_max", 0),
		Sort:     strings.TrimSpace(c.QueryParam("sort")),
	}
	if raw := strings.TrimSpace(c.QueryParam("price_min")); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			q.PriceMin = v
		}
	}
	if raw := strings.TrimSpace(c.QueryParam("price_max")); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			q.PriceMax = v
		}
	}
	if raw := strings.TrimSpace(c.QueryParam("amenities")); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				q.Amenities = append(q.Amenities, a)
			}
		}
	}

	q.Page = queryInt(c, "page", 1)
	if q.Page < 1 {
		q.Page = 1
	}
	q.Limit = queryInt(c, "limit", 20)
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	res, err := h.Client.SearchHotels(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "search failed"})
	}
	return c.JSON(http.StatusOK, res)
}
