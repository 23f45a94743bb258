// Package search is the Meilisearch glue: it shapes hotel rows into index
// documents, translates search filters into Meilisearch filter expressions
// and relays results.  The engine itself owns ranking and typo tolerance;
// nothing here does more than request shaping.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/meilisearch/meilisearch-go"

	"github.com/vietstay/hotel-booking/internal/config"
	"github.com/vietstay/hotel-booking/internal/model"
)

// HotelDoc is the document shape stored in the hotels index.  PriceFrom and
// PriceTo are denormalized from the room types at sync time so the search
// page can filter on price without touching MySQL.
type HotelDoc struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Stars        uint8    `json:"stars"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Amenities    []string `json:"amenities"`
	PriceFrom    int64    `json:"priceFrom"`
	PriceTo      int64    `json:"priceTo"`
	ThumbnailURL string   `json:"thumbnailUrl"`
}

// Query carries the parsed search parameters.  Zero values mean "not set";
// Page and Limit are normalized by the handler.
type Query struct {
	Q         string
	City      string
	Country   string
	Amenities []string
	StarsMin  int
	StarsMax  int
	PriceMin  int64
	PriceMax  int64
	Sort      string // whitelisted: priceFrom:asc|priceFrom:desc|stars:asc|stars:desc
	Page      int
	Limit     int
}

// Result is the page returned to the handler: raw hits plus paging meta.
type Result struct {
	Hits             []interface{} `json:"data"`
	Total            int64         `json:"total"`
	Page             int           `json:"page"`
	Limit            int           `json:"limit"`
	ProcessingTimeMs int64         `json:"processing_time_ms"`
}

// allowedSorts whitelists sortable attributes so arbitrary expressions
// never reach the engine.
var allowedSorts = map[string]bool{
	"priceFrom:asc":  true,
	"priceFrom:desc": true,
	"stars:asc":      true,
	"stars:desc":     true,
}

// Client wraps a Meilisearch service manager bound to the hotels index.
type Client struct {
	sm    meilisearch.ServiceManager
	index string
}

// NewClient connects to Meilisearch.  Returns nil when no host is
// configured; callers treat a nil client as "search unavailable".
func NewClient(cfg config.MeiliConfig) *Client {
	if cfg.Host == "" {
		return nil
	}
	opts := []meilisearch.Option{}
	if cfg.APIKey != "" {
		opts = append(opts, meilisearch.WithAPIKey(cfg.APIKey))
	}
	return &Client{sm: meilisearch.New(cfg.Host, opts...), index: cfg.IndexName}
}

// EnsureIndex configures the filterable and sortable attributes the search
// queries depend on.  Safe to call repeatedly; Meilisearch treats settings
// updates as idempotent tasks.
func (c *Client) EnsureIndex(ctx context.Context) error {
	idx := c.sm.Index(c.index)
	filterable := []string{"city", "country", "stars", "priceFrom", "priceTo", "amenities"}
	if _, err := idx.UpdateFilterableAttributesWithContext(ctx, &filterable); err != nil {
		return fmt.Errorf("update filterable attributes: %w", err)
	}
	sortable := []string{"priceFrom", "stars"}
	if _, err := idx.UpdateSortableAttributesWithContext(ctx, &sortable); err != nil {
		return fmt.Errorf("update sortable attributes: %w", err)
	}
	return nil
}

// IndexHotels pushes hotel documents into the index, keyed by id.
func (c *Client) IndexHotels(ctx context.Context, docs []HotelDoc) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := c.sm.Index(c.index).AddDocumentsWithContext(ctx, docs, "id"); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

// DeleteHotel removes one hotel document, used when an owner deletes the
// hotel in MySQL.
func (c *Client) DeleteHotel(ctx context.Context, id string) error {
	_, err := c.sm.Index(c.index).DeleteDocumentWithContext(ctx, id)
	return err
}

// SearchHotels translates the query into a Meilisearch request.  Each
// filter group is ANDed; amenities use the IN operator so a hotel matches
// when it has any of the requested tags.
func (c *Client) SearchHotels(ctx context.Context, q Query) (*Result, error) {
	filters := []string{}
	if q.City != "" {
		filters = append(filters, fmt.Sprintf("city = %q", q.City))
	}
	if q.Country != "" {
		filters = append(filters, fmt.Sprintf("country = %q", q.Country))
	}
	if q.StarsMin > 0 {
		filters = append(filters, fmt.Sprintf("stars >= %d", q.StarsMin))
	}
	if q.StarsMax > 0 {
		filters = append(filters, fmt.Sprintf("stars <= %d", q.StarsMax))
	}
	if q.PriceMin > 0 {
		filters = append(filters, fmt.Sprintf("priceFrom >= %d", q.PriceMin))
	}
	if q.PriceMax > 0 {
		filters = append(filters, fmt.Sprintf("priceTo <= %d", q.PriceMax))
	}
	if len(q.Amenities) > 0 {
		quoted := make([]string, len(q.Amenities))
		for i, a := range q.Amenities {
			quoted[i] = fmt.Sprintf("%q", a)
		}
		filters = append(filters, "amenities IN ["+strings.Join(quoted, ",")+"]")
	}

	req := &meilisearch.SearchRequest{
		Limit:  int64(q.Limit),
		Offset: int64((q.Page - 1) * q.Limit),
		AttributesToRetrieve: []string{
			"id", "name", "address", "city", "country", "stars",
			"latitude", "longitude", "amenities", "priceFrom", "priceTo", "thumbnailUrl",
		},
	}
	if len(filters) > 0 {
		req.Filter = filters
	}
	if allowedSorts[q.Sort] {
		req.Sort = []string{q.Sort}
	}

	res, err := c.sm.Index(c.index).SearchWithContext(ctx, q.Q, req)
	if err != nil {
		return nil, err
	}
	return &Result{
		Hits:             res.Hits,
		Total:            res.EstimatedTotalHits,
		Page:             q.Page,
		Limit:            q.Limit,
		ProcessingTimeMs: res.ProcessingTimeMs,
	}, nil
}

// DocFromHotel shapes a hotel row plus its price span into an index document.
func DocFromHotel(h model.Hotel, priceFrom, priceTo int64) HotelDoc {
	return HotelDoc{
		ID:           h.ID,
		Name:         h.Name,
		Address:      h.Address,
		City:         h.City,
		Country:      h.Country,
		Stars:        h.Stars,
		Latitude:     h.Latitude,
		Longitude:    h.Longitude,
		Amenities:    h.Amenities,
		PriceFrom:    priceFrom,
		PriceTo:      priceTo,
		ThumbnailURL: h.ThumbnailURL,
	}
}
