package availability

import "github.com/vietstay/hotel-booking/internal/model"

// Currency is the platform's single settlement currency.  All prices are
// whole VND; no floating point touches money anywhere in the engine.
const Currency = "VND"

// NightPrice is one line of a quote breakdown.
type NightPrice struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Price int64  `json:"price"` // effective nightly price in VND
}

// RoomQuote is the computed offer for one room type across the stay.
// AvailableAllNights is always true for quotes that reach the client; room
// types failing any night are dropped, but the field stays on the type so
// the aggregation is observable in tests.
type RoomQuote struct {
	RoomTypeID         string       `json:"roomTypeId"`
	Name               string       `json:"name"`
	Capacity           int          `json:"capacity"`
	Total              int64        `json:"total"`
	Breakdown          []NightPrice `json:"breakdown"`
	AvailableAllNights bool         `json:"availableAllNights"`
}

// QuoteResponse is the full quote for a stay request.  It is ephemeral:
// computed, optionally cached, never persisted.
type QuoteResponse struct {
	Nights   int         `json:"nights"`
	Currency string      `json:"currency"`
	Rooms    []RoomQuote `json:"rooms"`
}

// buildRoomQuote walks every night of the stay for one room type,
// accumulating the total and the per-night breakdown.  An unavailable night
// flips AvailableAllNights but does not stop the walk: the breakdown always
// covers the whole stay, which keeps the quote useful for diagnostics.
func buildRoomQuote(rt model.RoomType, stay Stay, inv availabilityMap, prices priceMap) RoomQuote {
	okAll := true
	var total int64
	breakdown := make([]NightPrice, 0, stay.Nights)
	for _, d := range stay.Dates() {
		if inv.availableOn(rt.ID, d) <= 0 {
			okAll = false
		}
		price := prices.priceOn(rt.ID, d, rt.BasePrice)
		total += price
		breakdown = append(breakdown, NightPrice{Date: d.Format(dateLayout), Price: price})
	}
	return RoomQuote{
		RoomTypeID:         rt.ID,
		Name:               rt.Name,
		Capacity:           rt.Capacity,
		Total:              total,
		Breakdown:          breakdown,
		AvailableAllNights: okAll,
	}
}

// buildQuote aggregates room quotes for all candidate room types and keeps
// only those sellable every night.  Candidates already passed the capacity
// filter in the room-type query; their order is preserved, so the response
// order matches the repository's creation order.
func buildQuote(roomTypes []model.RoomType, stay Stay, inv availabilityMap, prices priceMap) *QuoteResponse {
	rooms := make([]RoomQuote, 0, len(roomTypes))
	for _, rt := range roomTypes {
		if q := buildRoomQuote(rt, stay, inv, prices); q.AvailableAllNights {
			rooms = append(rooms, q)
		}
	}
	return &QuoteResponse{Nights: stay.Nights, Currency: Currency, Rooms: rooms}
}
