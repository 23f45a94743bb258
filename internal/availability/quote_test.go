package availability

import (
	"testing"
	"time"

	"github.com/vietstay/hotel-booking/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustStay(t *testing.T, checkIn, checkOut string) Stay {
	t.Helper()
	stay, err := NewStay(checkIn, checkOut)
	if err != nil {
		t.Fatalf("stay %s..%s: %v", checkIn, checkOut, err)
	}
	return stay
}

func TestBuildRoomQuoteOverridePrecedence(t *testing.T) {
	rt := model.RoomType{ID: "RT1", Name: "Deluxe", Capacity: 2, BasePrice: 500000}
	stay := mustStay(t, "2025-10-15", "2025-10-18")

	inv := availabilityMap{
		nightKey("RT1", day("2025-10-15")): 3,
		nightKey("RT1", day("2025-10-16")): 1,
		nightKey("RT1", day("2025-10-17")): 2,
	}
	// Only the middle night carries an override.
	prices := priceMap{
		nightKey("RT1", day("2025-10-16")): 600000,
	}

	q := buildRoomQuote(rt, stay, inv, prices)
	if !q.AvailableAllNights {
		t.Fatal("expected all nights available")
	}
	if q.Total != 1600000 {
		t.Fatalf("total = %d, want 1600000", q.Total)
	}
	wantPrices := []int64{500000, 600000, 500000}
	if len(q.Breakdown) != len(wantPrices) {
		t.Fatalf("breakdown has %d nights, want %d", len(q.Breakdown), len(wantPrices))
	}
	for i, n := range q.Breakdown {
		if n.Price != wantPrices[i] {
			t.Errorf("night %s price = %d, want %d", n.Date, n.Price, wantPrices[i])
		}
	}
}

func TestBuildRoomQuoteMissingInventoryIsUnavailable(t *testing.T) {
	rt := model.RoomType{ID: "RT1", Name: "Deluxe", Capacity: 2, BasePrice: 500000}
	stay := mustStay(t, "2025-10-15", "2025-10-17")

	// Second night has no inventory row at all.
	inv := availabilityMap{
		nightKey("RT1", day("2025-10-15")): 1,
	}
	q := buildRoomQuote(rt, stay, inv, priceMap{})
	if q.AvailableAllNights {
		t.Fatal("a night without an inventory row must count as sold out")
	}
	// The walk still covers the full stay.
	if len(q.Breakdown) != 2 {
		t.Fatalf("breakdown has %d nights, want 2", len(q.Breakdown))
	}
	if q.Total != 1000000 {
		t.Fatalf("total = %d, want 1000000", q.Total)
	}
}

func TestBuildQuoteDropsPartiallyAvailableRooms(t *testing.T) {
	stay := mustStay(t, "2025-10-15", "2025-10-17")
	roomTypes := []model.RoomType{
		{ID: "RT1", Name: "Deluxe", Capacity: 2, BasePrice: 500000},
		{ID: "RT2", Name: "Suite", Capacity: 4, BasePrice: 900000},
		{ID: "RT3", Name: "Twin", Capacity: 2, BasePrice: 400000},
	}
	inv := availabilityMap{
		nightKey("RT1", day("2025-10-15")): 2,
		nightKey("RT1", day("2025-10-16")): 2,
		// RT2 is sold out on the second night.
		nightKey("RT2", day("2025-10-15")): 1,
		nightKey("RT2", day("2025-10-16")): 0,
		nightKey("RT3", day("2025-10-15")): 5,
		nightKey("RT3", day("2025-10-16")): 5,
	}

	resp := buildQuote(roomTypes, stay, inv, priceMap{})
	if resp.Nights != 2 {
		t.Fatalf("nights = %d, want 2", resp.Nights)
	}
	if resp.Currency != "VND" {
		t.Fatalf("currency = %q, want VND", resp.Currency)
	}
	if len(resp.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(resp.Rooms))
	}
	// Input order survives aggregation.
	if resp.Rooms[0].RoomTypeID != "RT1" || resp.Rooms[1].RoomTypeID != "RT3" {
		t.Fatalf("room order = %s, %s; want RT1, RT3", resp.Rooms[0].RoomTypeID, resp.Rooms[1].RoomTypeID)
	}
	for _, r := range resp.Rooms {
		if !r.AvailableAllNights {
			t.Errorf("room %s emitted without full availability", r.RoomTypeID)
		}
	}
}

func TestQuoteKey(t *testing.T) {
	stay := mustStay(t, "2025-10-15", "2025-10-18")
	got := quoteKey("avail", "H1", stay, 2)
	want := "avail:H1:20251015-20251018:2"
	if got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
	// A different party size must never collide.
	if other := quoteKey("avail", "H1", stay, 3); other == got {
		t.Fatalf("keys for different guest counts collide: %q", other)
	}
}
