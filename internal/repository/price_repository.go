package repository // repository for per-date price overrides

import (
	"context"
	"database/sql"
	"time"

	"github.com/vietstay/hotel-booking/internal/model"
)

// PriceRepo encapsulates database operations for the price_calendar table,
// which stores date-specific nightly prices overriding a room type's base
// price (seasonal pricing).
type PriceRepo struct {
	db *sql.DB
}

// NewPriceRepo constructs a PriceRepo given a DB handle.
func NewPriceRepo(db *sql.DB) *PriceRepo {
	return &PriceRepo{db: db}
}

// UpsertBulk writes a batch of (date, price) override rows in one statement.
// Existing rows for the same (room_type_id, date) pair are overwritten.
func (r *PriceRepo) UpsertBulk(ctx context.Context, rows []model.PriceCalendar) error {
	if len(rows) == 0 {
		return nil
	}
	query := `INSERT INTO price_calendar (room_type_id, date, price) VALUES `
	args := make([]interface{}, 0, len(rows)*3)
	for i, pc := range rows {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, pc.RoomTypeID, pc.Date.Format("2006-01-02"), pc.Price)
	}
	query += " ON DUPLICATE KEY UPDATE price=VALUES(price)"
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// DeleteRange removes overrides for a room type inside [from, to), reverting
// those dates to the base price.
func (r *PriceRepo) DeleteRange(ctx context.Context, roomTypeID string, from, to time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM price_calendar WHERE room_type_id=? AND date >= ? AND date < ?",
		roomTypeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	return err
}

// ListRange fetches, in a single query, every override row for the given
// room types with from <= date < to.  Companion to InventoryRepo.ListRange;
// the quote engine issues the two queries concurrently.
func (r *PriceRepo) ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.PriceCalendar, error) {
	if len(roomTypeIDs) == 0 {
		return []model.PriceCalendar{}, nil
	}
	query := `SELECT room_type_id, date, price FROM price_calendar
		WHERE room_type_id IN (` + placeholders(len(roomTypeIDs)) + `) AND date >= ? AND date < ?`
	args := make([]interface{}, 0, len(roomTypeIDs)+2)
	for _, id := range roomTypeIDs {
		args = append(args, id)
	}
	args = append(args, from.Format("2006-01-02"), to.Format("2006-01-02"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.PriceCalendar{}
	for rows.Next() {
		var pc model.PriceCalendar
		if err := rows.Scan(&pc.RoomTypeID, &pc.Date, &pc.Price); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}
