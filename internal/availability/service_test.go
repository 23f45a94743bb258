package availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vietstay/hotel-booking/internal/model"
	"github.com/vietstay/hotel-booking/internal/obs"
)

type fakeRoomTypes struct {
	mu    sync.Mutex
	calls int
	rows  []model.RoomType
	err   error
}

func (f *fakeRoomTypes) ListByHotelAndCapacity(ctx context.Context, hotelID string, minCapacity int) ([]model.RoomType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.rows, f.err
}

type fakeInventory struct {
	mu    sync.Mutex
	calls int
	rows  []model.Inventory
	err   error
}

func (f *fakeInventory) ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.rows, f.err
}

type fakePrices struct {
	mu    sync.Mutex
	calls int
	rows  []model.PriceCalendar
	err   error
}

func (f *fakePrices) ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.PriceCalendar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.rows, f.err
}

type fakeCache struct {
	store  map[string]*QuoteResponse
	gets   int
	sets   int
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]*QuoteResponse{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (*QuoteResponse, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.store[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, q *QuoteResponse) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.store[key] = q
	return nil
}

func testMetrics() *obs.Metrics {
	return obs.NewMetrics(prometheus.NewRegistry())
}

func fullInventory(roomTypeID string, stay Stay, n int) []model.Inventory {
	rows := make([]model.Inventory, 0, stay.Nights)
	for _, d := range stay.Dates() {
		rows = append(rows, model.Inventory{RoomTypeID: roomTypeID, Date: d, Available: n})
	}
	return rows
}

func TestQuoteComputesThenServesFromCache(t *testing.T) {
	stay := mustStay(t, "2025-10-15", "2025-10-18")
	roomTypes := &fakeRoomTypes{rows: []model.RoomType{{ID: "RT1", Name: "Deluxe", Capacity: 2, BasePrice: 500000}}}
	inventory := &fakeInventory{rows: fullInventory("RT1", stay, 2)}
	prices := &fakePrices{}
	cache := newFakeCache()

	svc := NewService(roomTypes, inventory, prices, cache, "avail", testMetrics())
	req := QuoteRequest{HotelID: "H1", CheckIn: "2025-10-15", CheckOut: "2025-10-18", Guests: 2}

	first, err := svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("first quote: %v", err)
	}
	if len(first.Rooms) != 1 || first.Rooms[0].Total != 1500000 {
		t.Fatalf("unexpected first quote: %+v", first)
	}
	if roomTypes.calls != 1 || inventory.calls != 1 || prices.calls != 1 {
		t.Fatalf("store calls = %d/%d/%d, want 1/1/1", roomTypes.calls, inventory.calls, prices.calls)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := svc.Quote(context.Background(), req)
	if err != nil {
		t.Fatalf("second quote: %v", err)
	}
	if second.Rooms[0].Total != first.Rooms[0].Total {
		t.Fatalf("cached quote diverged: %+v vs %+v", second, first)
	}
	// The repeat request must not touch the database again.
	if roomTypes.calls != 1 || inventory.calls != 1 || prices.calls != 1 {
		t.Fatalf("store calls after cache hit = %d/%d/%d, want 1/1/1", roomTypes.calls, inventory.calls, prices.calls)
	}
	if cache.gets != 2 {
		t.Fatalf("cache gets = %d, want 2", cache.gets)
	}
}

func TestQuoteEmptyCandidateShortcut(t *testing.T) {
	roomTypes := &fakeRoomTypes{} // nothing fits the party
	inventory := &fakeInventory{}
	prices := &fakePrices{}
	cache := newFakeCache()

	svc := NewService(roomTypes, inventory, prices, cache, "avail", nil)
	resp, err := svc.Quote(context.Background(), QuoteRequest{HotelID: "H1", CheckIn: "2025-10-15", CheckOut: "2025-10-17", Guests: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Rooms == nil || len(resp.Rooms) != 0 {
		t.Fatalf("want empty (non-nil) rooms, got %#v", resp.Rooms)
	}
	if inventory.calls != 0 || prices.calls != 0 {
		t.Fatalf("calendar reads = %d/%d, want 0/0 when no candidate exists", inventory.calls, prices.calls)
	}
	// Even a doomed query is memoized.
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}
}

func TestQuoteCacheFailureComputesLive(t *testing.T) {
	stay := mustStay(t, "2025-10-15", "2025-10-16")
	roomTypes := &fakeRoomTypes{rows: []model.RoomType{{ID: "RT1", Capacity: 2, BasePrice: 400000}}}
	inventory := &fakeInventory{rows: fullInventory("RT1", stay, 1)}
	prices := &fakePrices{}
	cache := newFakeCache()
	cache.getErr = errors.New("redis: connection refused")
	cache.setErr = cache.getErr

	svc := NewService(roomTypes, inventory, prices, cache, "avail", nil)
	resp, err := svc.Quote(context.Background(), QuoteRequest{HotelID: "H1", CheckIn: "2025-10-15", CheckOut: "2025-10-16", Guests: 2})
	if err != nil {
		t.Fatalf("cache outage must not fail the quote: %v", err)
	}
	if len(resp.Rooms) != 1 || resp.Rooms[0].Total != 400000 {
		t.Fatalf("unexpected quote: %+v", resp)
	}
}

func TestQuoteNilCache(t *testing.T) {
	stay := mustStay(t, "2025-10-15", "2025-10-16")
	roomTypes := &fakeRoomTypes{rows: []model.RoomType{{ID: "RT1", Capacity: 2, BasePrice: 400000}}}
	inventory := &fakeInventory{rows: fullInventory("RT1", stay, 1)}
	prices := &fakePrices{}

	svc := NewService(roomTypes, inventory, prices, nil, "", nil)
	if _, err := svc.Quote(context.Background(), QuoteRequest{HotelID: "H1", CheckIn: "2025-10-15", CheckOut: "2025-10-16", Guests: 1}); err != nil {
		t.Fatalf("nil cache must be tolerated: %v", err)
	}
}

func TestQuoteInvalidRangeSkipsStores(t *testing.T) {
	roomTypes := &fakeRoomTypes{}
	svc := NewService(roomTypes, &fakeInventory{}, &fakePrices{}, nil, "avail", nil)

	_, err := svc.Quote(context.Background(), QuoteRequest{HotelID: "H1", CheckIn: "2025-10-18", CheckOut: "2025-10-15", Guests: 2})
	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
	if roomTypes.calls != 0 {
		t.Fatalf("room type store called %d times before validation", roomTypes.calls)
	}
}

func TestQuoteStoreErrorPropagates(t *testing.T) {
	boom := errors.New("mysql is down")
	roomTypes := &fakeRoomTypes{rows: []model.RoomType{{ID: "RT1", Capacity: 2, BasePrice: 100}}}
	inventory := &fakeInventory{err: boom}
	prices := &fakePrices{}

	svc := NewService(roomTypes, inventory, prices, nil, "avail", nil)
	_, err := svc.Quote(context.Background(), QuoteRequest{HotelID: "H1", CheckIn: "2025-10-15", CheckOut: "2025-10-17", Guests: 2})
	if !errors.Is(err, boom) {
		t.Fatalf("want store error to surface, got %v", err)
	}
}
