package repository // repository for per-date room inventory

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/vietstay/hotel-booking/internal/model"
)

// InventoryRepo encapsulates database operations for the inventories table,
// which stores the count of sellable units per room type per calendar date.
type InventoryRepo struct {
	db *sql.DB
}

// NewInventoryRepo constructs an InventoryRepo given a DB handle.
func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// UpsertBulk writes a batch of (date, available) rows for arbitrary room
// types in one statement.  Existing rows for the same (room_type_id, date)
// pair are overwritten.  Timestamps default in the DB.
func (r *InventoryRepo) UpsertBulk(ctx context.Context, rows []model.Inventory) error {
	if len(rows) == 0 {
		return nil
	}
	query := `INSERT INTO inventories (room_type_id, date, available) VALUES `
	args := make([]interface{}, 0, len(rows)*3)
	for i, iv := range rows {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, iv.RoomTypeID, iv.Date.Format("2006-01-02"), iv.Available)
	}
	query += " ON DUPLICATE KEY UPDATE available=VALUES(available)"
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// ListRange fetches, in a single query, every inventory row for the given
// room types with from <= date < to.  The quote engine calls this once per
// quote; per-night-per-room queries would be an O(rooms x nights) storm.
func (r *InventoryRepo) ListRange(ctx context.Context, roomTypeIDs []string, from, to time.Time) ([]model.Inventory, error) {
	if len(roomTypeIDs) == 0 {
		return []model.Inventory{}, nil
	}
	query := `SELECT room_type_id, date, available FROM inventories
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
	out := []model.Inventory{}
	for rows.Next() {
		var iv model.Inventory
		if err := rows.Scan(&iv.RoomTypeID, &iv.Date, &iv.Available); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

// placeholders returns "?,?,...,?" with n markers for IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
