package availability

import (
	"context"
	"sync"
	"time"

	"github.com/vietstay/hotel-booking/internal/model"
)

// nightKey identifies one (room type, night) cell in the lookup maps.
func nightKey(roomTypeID string, d time.Time) string {
	return roomTypeID + "-" + d.Format("20060102")
}

// availabilityMap holds per-night unit counts.  The zero default for a
// missing cell is a named policy, not an accident: a date with no inventory
// row has nothing to sell.
type availabilityMap map[string]int

func (m availabilityMap) availableOn(roomTypeID string, d time.Time) int {
	return m[nightKey(roomTypeID, d)] // missing -> 0
}

// priceMap holds per-night override prices.  A missing cell falls back to
// the room type's base price.
type priceMap map[string]int64

func (m priceMap) priceOn(roomTypeID string, d time.Time, basePrice int64) int64 {
	if p, ok := m[nightKey(roomTypeID, d)]; ok {
		return p
	}
	return basePrice
}

// fetchCalendars issues the two bulk reads for a quote (inventory counts
// and price overrides) concurrently, and waits for both.  They are
// independent reads against different tables, so a fan-out saves a round
// trip; each store error propagates unrecovered.
func (s *Service) fetchCalendars(ctx context.Context, roomTypeIDs []string, stay Stay) (availabilityMap, priceMap, error) {
	var (
		wg       sync.WaitGroup
		invRows  []model.Inventory
		invErr   error
		price    []model.PriceCalendar
		priceErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		invRows, invErr = s.inventory.ListRange(ctx, roomTypeIDs, stay.CheckIn, stay.CheckOut)
	}()
	go func() {
		defer wg.Done()
		price, priceErr = s.prices.ListRange(ctx, roomTypeIDs, stay.CheckIn, stay.CheckOut)
	}()
	wg.Wait()
	if invErr != nil {
		return nil, nil, invErr
	}
	if priceErr != nil {
		return nil, nil, priceErr
	}

	inv := make(availabilityMap, len(invRows))
	for _, row := range invRows {
		inv[nightKey(row.RoomTypeID, row.Date)] = row.Available
	}
	prices := make(priceMap, len(price))
	for _, row := range price {
		prices[nightKey(row.RoomTypeID, row.Date)] = row.Price
	}
	return inv, prices, nil
}
