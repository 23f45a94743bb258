package availability

import (
	"errors"
	"testing"
	"time"
)

func TestNewStay(t *testing.T) {
	cases := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantNights int
		wantReason string // empty means the stay must validate
	}{
		{name: "one night", checkIn: "2025-10-15", checkOut: "2025-10-16", wantNights: 1},
		{name: "three nights", checkIn: "2025-10-15", checkOut: "2025-10-18", wantNights: 3},
		{name: "thirty nights allowed", checkIn: "2025-10-01", checkOut: "2025-10-31", wantNights: 30},
		{name: "thirty one nights rejected", checkIn: "2025-10-01", checkOut: "2025-11-01", wantReason: "Max 30 nights"},
		{name: "equal dates", checkIn: "2025-10-15", checkOut: "2025-10-15", wantReason: "checkOut must be after checkIn"},
		{name: "reversed range", checkIn: "2025-10-18", checkOut: "2025-10-15", wantReason: "checkOut must be after checkIn"},
		{name: "garbage check in", checkIn: "15-10-2025", checkOut: "2025-10-18", wantReason: "checkIn must be a valid date (YYYY-MM-DD)"},
		{name: "garbage check out", checkIn: "2025-10-15", checkOut: "tomorrow", wantReason: "checkOut must be a valid date (YYYY-MM-DD)"},
		{name: "crosses month boundary", checkIn: "2025-10-30", checkOut: "2025-11-02", wantNights: 3},
		{name: "crosses year boundary", checkIn: "2025-12-30", checkOut: "2026-01-02", wantNights: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := NewStay(tc.checkIn, tc.checkOut)
			if tc.wantReason != "" {
				var rangeErr *InvalidRangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("expected InvalidRangeError, got %v", err)
				}
				if rangeErr.Reason != tc.wantReason {
					t.Fatalf("reason = %q, want %q", rangeErr.Reason, tc.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stay.Nights != tc.wantNights {
				t.Fatalf("nights = %d, want %d", stay.Nights, tc.wantNights)
			}
		})
	}
}

func TestStayDates(t *testing.T) {
	stay, err := NewStay("2025-10-15", "2025-10-18")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dates := stay.Dates()
	want := []string{"2025-10-15", "2025-10-16", "2025-10-17"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i, d := range dates {
		if got := d.Format("2006-01-02"); got != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, got, want[i])
		}
	}
	// Check-out day itself is never a night of the stay.
	last := dates[len(dates)-1]
	if !last.Add(24 * time.Hour).Equal(stay.CheckOut) {
		t.Errorf("last night %v should be the eve of check-out %v", last, stay.CheckOut)
	}
}
