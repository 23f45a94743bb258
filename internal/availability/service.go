package availability

import (
	"context"
	"log"
	"time"

	"github.com/vietstay/hotel-booking/internal/model"
	"github.com/vietstay/hotel-booking/internal/obs"
)

// RoomTypeStore lists the candidate room types for a quote.  Implementations
// must apply the capacity filter in the query and return rows in a stable,
// documented order (the SQL repo orders by created_at, id).
type RoomTypeStore interface {
	ListByHotelAndCapacity(ctx context.Context, hotelID string, minCapacity int) ([]model.RoomType, error)
}

// InventoryStore bulk-reads per-night unit counts for a set of room types.
type InventoryStore interface {
	ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.Inventory, error)
}

// PriceStore bulk-reads per-night price overrides for a set of room types.
type PriceStore interface {
	ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.PriceCalendar, error)
}

// QuoteRequest is the validated-at-the-edge input to the engine.  HotelID
// and Guests are checked by the handler; the date strings are validated
// here via NewStay before any I/O happens.
type QuoteRequest struct {
	HotelID  string `json:"hotelId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

// Service is the quote engine.  It owns no state beyond its collaborators
// and is safe for concurrent use; two racing requests for the same cold key
// both compute and both write the same value, which is benign.
type Service struct {
	roomTypes RoomTypeStore
	inventory InventoryStore
	prices    PriceStore
	cache     Cache // nil disables caching
	keyPrefix string
	metrics   *obs.Metrics // nil disables instrumentation
}

// NewService wires the engine.  cache may be nil (e.g. Redis down at boot);
// the engine then computes every quote live.
func NewService(roomTypes RoomTypeStore, inventory InventoryStore, prices PriceStore, cache Cache, keyPrefix string, metrics *obs.Metrics) *Service {
	if keyPrefix == "" {
		keyPrefix = "avail"
	}
	return &Service{
		roomTypes: roomTypes,
		inventory: inventory,
		prices:    prices,
		cache:     cache,
		keyPrefix: keyPrefix,
		metrics:   metrics,
	}
}

// Quote computes (or recalls) the availability and price quote for a stay.
//
// Order of operations: validate -> cache get -> capacity-filtered room type
// query -> concurrent calendar fetch -> aggregate -> cache set.  Validation
// failures surface as *InvalidRangeError before any I/O; store errors
// propagate as-is; cache errors are soft (logged, then treated as a miss),
// so a Redis outage degrades latency, not correctness.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	stay, err := NewStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncQuoteRequests()
		defer func(start time.Time) {
			s.metrics.ObserveQuoteDuration(time.Since(start).Seconds())
		}(time.Now())
	}

	key := quoteKey(s.keyPrefix, req.HotelID, stay, req.Guests)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("availability: cache get failed, computing live: %v", err)
		} else if cached != nil {
			if s.metrics != nil {
				s.metrics.IncQuoteCacheHits()
			}
			return cached, nil
		}
	}
	if s.metrics != nil {
		s.metrics.IncQuoteCacheMisses()
	}

	roomTypes, err := s.roomTypes.ListByHotelAndCapacity(ctx, req.HotelID, req.Guests)
	if err != nil {
		return nil, err
	}
	if len(roomTypes) == 0 {
		// No candidate can host the party; skip the calendar reads entirely.
		// The empty quote is still cached so repeated doomed queries do not
		// hammer the database.
		empty := &QuoteResponse{Nights: stay.Nights, Currency: Currency, Rooms: []RoomQuote{}}
		s.cacheSet(ctx, key, empty)
		return empty, nil
	}

	ids := make([]string, len(roomTypes))
	for i, rt := range roomTypes {
		ids[i] = rt.ID
	}
	inv, prices, err := s.fetchCalendars(ctx, ids, stay)
	if err != nil {
		return nil, err
	}

	resp := buildQuote(roomTypes, stay, inv, prices)
	s.cacheSet(ctx, key, resp)
	return resp, nil
}

func (s *Service) cacheSet(ctx context.Context, key string, q *QuoteResponse) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, q); err != nil {
		log.Printf("availability: cache set failed: %v", err)
	}
}
