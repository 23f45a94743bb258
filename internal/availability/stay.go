// Package availability implements the quote engine: given a hotel, a stay
// range and a guest count it determines, per room type, whether every night
// is sellable and what the stay costs, with a Redis cache in front of the
// computation.
package availability

import "time"

// maxNights caps the length of a quotable stay.
const maxNights = 30

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// InvalidRangeError reports a stay range the engine refuses to quote.  The
// reason is safe to show to clients and names the violated constraint.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string { return e.Reason }

// Stay is the validated stay window.  It is the single source of truth for
// which nights a quote covers: both the calendar lookups and the aggregator
// derive their night set from it, so the two can never disagree.
type Stay struct {
	CheckIn  time.Time // first night, midnight UTC
	CheckOut time.Time // day of departure, exclusive
	Nights   int       // whole-night count, 1..maxNights
}

// NewStay parses and validates a check-in/check-out pair.  It is pure and
// performs no I/O; every quote path validates here before touching storage.
func NewStay(checkIn, checkOut string) (Stay, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return Stay{}, &InvalidRangeError{Reason: "checkIn must be a valid date (YYYY-MM-DD)"}
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return Stay{}, &InvalidRangeError{Reason: "checkOut must be a valid date (YYYY-MM-DD)"}
	}
	if !out.After(in) {
		return Stay{}, &InvalidRangeError{Reason: "checkOut must be after checkIn"}
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return Stay{}, &InvalidRangeError{Reason: "Nights must be >= 1"}
	}
	if nights > maxNights {
		return Stay{}, &InvalidRangeError{Reason: "Max 30 nights"}
	}
	return Stay{CheckIn: in, CheckOut: out, Nights: nights}, nil
}

// Dates enumerates the nights of the stay in chronological order: Nights
// consecutive dates starting at CheckIn, excluding CheckOut.
func (s Stay) Dates() []time.Time {
	out := make([]time.Time, 0, s.Nights)
	for d := s.CheckIn; d.Before(s.CheckOut); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
