package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vietstay/hotel-booking/internal/availability"
	"github.com/vietstay/hotel-booking/internal/handler"
	"github.com/vietstay/hotel-booking/internal/model"
)

type stubRoomTypes struct {
	rows []model.RoomType
	err  error
}

func (s *stubRoomTypes) ListByHotelAndCapacity(ctx context.Context, hotelID string, minCapacity int) ([]model.RoomType, error) {
	return s.rows, s.err
}

type stubInventory struct{ rows []model.Inventory }

func (s *stubInventory) ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.Inventory, error) {
	return s.rows, nil
}

type stubPrices struct{ rows []model.PriceCalendar }

func (s *stubPrices) ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.PriceCalendar, error) {
	return s.rows, nil
}

func postQuote(t *testing.T, h *handler.AvailabilityHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/availability/quote", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Quote(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func quoteHandler(roomTypes *stubRoomTypes, inv *stubInventory, prices *stubPrices) *handler.AvailabilityHandler {
	svc := availability.NewService(roomTypes, inv, prices, nil, "avail", nil)
	return handler.NewAvailabilityHandler(svc)
}

func TestQuoteEndpointHappyPath(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	roomTypes := &stubRoomTypes{rows: []model.RoomType{{ID: "RT1", Name: "Deluxe", Capacity: 2, BasePrice: 500000}}}
	inv := &stubInventory{rows: []model.Inventory{
		{RoomTypeID: "RT1", Date: day("2025-10-15"), Available: 2},
		{RoomTypeID: "RT1", Date: day("2025-10-16"), Available: 2},
	}}
	h := quoteHandler(roomTypes, inv, &stubPrices{})

	rec := postQuote(t, h, `{"hotelId":"H1","checkIn":"2025-10-15","checkOut":"2025-10-17","guests":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp availability.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Nights != 2 || resp.Currency != "VND" || len(resp.Rooms) != 1 {
		t.Fatalf("unexpected quote: %+v", resp)
	}
	if resp.Rooms[0].Total != 1000000 {
		t.Fatalf("total = %d, want 1000000", resp.Rooms[0].Total)
	}
}

func TestQuoteEndpointValidation(t *testing.T) {
	h := quoteHandler(&stubRoomTypes{}, &stubInventory{}, &stubPrices{})

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "missing hotel", body: `{"checkIn":"2025-10-15","checkOut":"2025-10-17","guests":2}`, wantErr: "hotelId is required"},
		{name: "zero guests", body: `{"hotelId":"H1","checkIn":"2025-10-15","checkOut":"2025-10-17"}`, wantErr: "guests must be >= 1"},
		{name: "reversed range", body: `{"hotelId":"H1","checkIn":"2025-10-17","checkOut":"2025-10-15","guests":2}`, wantErr: "checkOut must be after checkIn"},
		{name: "too long", body: `{"hotelId":"H1","checkIn":"2025-10-01","checkOut":"2025-11-01","guests":2}`, wantErr: "Max 30 nights"},
		{name: "bad date", body: `{"hotelId":"H1","checkIn":"Oct 15","checkOut":"2025-10-17","guests":2}`, wantErr: "checkIn must be a valid date (YYYY-MM-DD)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postQuote(t, h, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad error JSON: %v", err)
			}
			if body["error"] != tc.wantErr {
				t.Fatalf("error = %q, want %q", body["error"], tc.wantErr)
			}
		})
	}
}

func TestQuoteEndpointStorageFailure(t *testing.T) {
	roomTypes := &stubRoomTypes{err: errors.New("connection reset")}
	h := quoteHandler(roomTypes, &stubInventory{}, &stubPrices{})

	rec := postQuote(t, h, `{"hotelId":"H1","checkIn":"2025-10-15","checkOut":"2025-10-17","guests":2}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad error JSON: %v", err)
	}
	// Internals must not leak through the error payload.
	if body["error"] != "quote failed" {
		t.Fatalf("error = %q, want generic message", body["error"])
	}
}
