package repository // repository for room type persistence

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vietstay/hotel-booking/internal/model"
)

// RoomTypeRepo encapsulates database operations for the room_types table.
type RoomTypeRepo struct {
	db *sql.DB
}

// NewRoomTypeRepo constructs a RoomTypeRepo given a DB handle.
func NewRoomTypeRepo(db *sql.DB) *RoomTypeRepo {
	return &RoomTypeRepo{db: db}
}

const roomTypeColumns = "id, hotel_id, name, capacity, base_price, created_at, updated_at"

// Create inserts a room type under a hotel and assigns it a fresh UUID.
func (r *RoomTypeRepo) Create(ctx context.Context, rt *model.RoomType) error {
	rt.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO room_types (id, hotel_id, name, capacity, base_price) VALUES (?,?,?,?,?)",
		rt.ID, rt.HotelID, rt.Name, rt.Capacity, rt.BasePrice)
	return err
}

// GetByID fetches a single room type.
func (r *RoomTypeRepo) GetByID(ctx context.Context, id string) (*model.RoomType, error) {
	var rt model.RoomType
	err := r.db.QueryRowContext(ctx,
		"SELECT "+roomTypeColumns+" FROM room_types WHERE id=? LIMIT 1", id).
		Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Capacity, &rt.BasePrice, &rt.CreatedAt, &rt.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// GetOwned fetches a room type only when its hotel belongs to ownerID.
// Used by owner mutations to enforce ownership in a single query.
func (r *RoomTypeRepo) GetOwned(ctx context.Context, id string, ownerID uint64) (*model.RoomType, error) {
	var rt model.RoomType
	err := r.db.QueryRowContext(ctx,
		`SELECT rt.id, rt.hotel_id, rt.name, rt.capacity, rt.base_price, rt.created_at, rt.updated_at
		 FROM room_types rt
		 JOIN hotels h ON h.id = rt.hotel_id
		 WHERE rt.id=? AND h.owner_id=? LIMIT 1`, id, ownerID).
		Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Capacity, &rt.BasePrice, &rt.CreatedAt, &rt.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// ListByHotel returns every room type of a hotel in creation order.
func (r *RoomTypeRepo) ListByHotel(ctx context.Context, hotelID string) ([]model.RoomType, error) {
	return r.list(ctx,
		"SELECT "+roomTypeColumns+" FROM room_types WHERE hotel_id=? ORDER BY created_at, id",
		hotelID)
}

// ListByHotelAndCapacity returns the room types of a hotel that can host at
// least minCapacity guests.  The quote engine relies on the ORDER BY here:
// rooms are emitted in creation order and the aggregator preserves it, so
// quote responses are deterministic across identical requests.
func (r *RoomTypeRepo) ListByHotelAndCapacity(ctx context.Context, hotelID string, minCapacity int) ([]model.RoomType, error) {
	return r.list(ctx,
		"SELECT "+roomTypeColumns+" FROM room_types WHERE hotel_id=? AND capacity>=? ORDER BY created_at, id",
		hotelID, minCapacity)
}

// PriceSpan returns the cheapest and the most expensive base price among a
// hotel's room types.  Both come back 0 when the hotel has no room types;
// the search sync uses the span to denormalize priceFrom/priceTo.
func (r *RoomTypeRepo) PriceSpan(ctx context.Context, hotelID string) (int64, int64, error) {
	var from, to sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT MIN(base_price), MAX(base_price) FROM room_types WHERE hotel_id=?",
		hotelID).Scan(&from, &to)
	if err != nil {
		return 0, 0, err
	}
	return from.Int64, to.Int64, nil
}

// Update rewrites the mutable columns of a room type.
func (r *RoomTypeRepo) Update(ctx context.Context, rt *model.RoomType) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE room_types SET name=?, capacity=?, base_price=?, updated_at=NOW() WHERE id=?",
		rt.Name, rt.Capacity, rt.BasePrice, rt.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a room type along with its calendar rows (DB cascade).
func (r *RoomTypeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM room_types WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomTypeRepo) list(ctx context.Context, query string, args ...any) ([]model.RoomType, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.RoomType{}
	for rows.Next() {
		var rt model.RoomType
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Capacity, &rt.BasePrice, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
