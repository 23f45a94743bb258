package repository // repository for hotel persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/vietstay/hotel-booking/internal/model"
)

// HotelRepo encapsulates database operations for the hotels table.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo constructs a HotelRepo given a DB handle.
func NewHotelRepo(db *sql.DB) *HotelRepo {
	return &HotelRepo{db: db}
}

const hotelColumns = "id, owner_id, name, address, city, country, stars, latitude, longitude, amenities, thumbnail_url, created_at, updated_at"

// Create inserts a hotel and assigns it a fresh UUID.  The amenity list is
// stored as a JSON array so the column survives schema-less edits.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
	h.ID = uuid.NewString()
	amenities, err := json.Marshal(h.Amenities)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO hotels (id, owner_id, name, address, city, country, stars, latitude, longitude, amenities, thumbnail_url)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		h.ID, h.OwnerID, h.Name, h.Address, h.City, h.Country, h.Stars, h.Latitude, h.Longitude, string(amenities), h.ThumbnailURL)
	return err
}

// GetByID fetches a hotel regardless of ownership.
func (r *HotelRepo) GetByID(ctx context.Context, id string) (*model.Hotel, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+hotelColumns+" FROM hotels WHERE id=? LIMIT 1", id)
	return scanHotel(row)
}

// GetByIDAndOwner fetches a hotel only when it belongs to the given owner.
// Returns ErrNotFound both for missing rows and for rows owned by someone
// else, so handlers cannot leak existence to non-owners.
func (r *HotelRepo) GetByIDAndOwner(ctx context.Context, id string, ownerID uint64) (*model.Hotel, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+hotelColumns+" FROM hotels WHERE id=? AND owner_id=? LIMIT 1", id, ownerID)
	return scanHotel(row)
}

// ListByOwner returns all hotels managed by one owner, oldest first.
func (r *HotelRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+hotelColumns+" FROM hotels WHERE owner_id=? ORDER BY created_at, id", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHotels(rows)
}

// ListPublic returns a page of hotels for the public browse endpoint along
// with the total count.
func (r *HotelRepo) ListPublic(ctx context.Context, page, pageSize int) ([]model.Hotel, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM hotels").Scan(&total); err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+hotelColumns+" FROM hotels ORDER BY created_at, id LIMIT ? OFFSET ?",
		pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectHotels(rows)
	return items, total, err
}

// ListAll streams every hotel row.  Used by the search index sync command.
func (r *HotelRepo) ListAll(ctx context.Context) ([]model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+hotelColumns+" FROM hotels ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHotels(rows)
}

// Update rewrites the mutable columns of a hotel owned by ownerID.
func (r *HotelRepo) Update(ctx context.Context, h *model.Hotel, ownerID uint64) error {
	amenities, err := json.Marshal(h.Amenities)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE hotels SET name=?, address=?, city=?, country=?, stars=?, latitude=?, longitude=?, amenities=?, thumbnail_url=?, updated_at=NOW()
		 WHERE id=? AND owner_id=?`,
		h.Name, h.Address, h.City, h.Country, h.Stars, h.Latitude, h.Longitude, string(amenities), h.ThumbnailURL, h.ID, ownerID)
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

// Delete removes a hotel owned by ownerID.  Room types, inventory and price
// rows cascade at the database level.
func (r *HotelRepo) Delete(ctx context.Context, id string, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM hotels WHERE id=? AND owner_id=?", id, ownerID)
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

func scanHotel(row *sql.Row) (*model.Hotel, error) {
	var h model.Hotel
	var amenities string
	err := row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Address, &h.City, &h.Country,
		&h.Stars, &h.Latitude, &h.Longitude, &amenities, &h.ThumbnailURL, &h.CreatedAt, &h.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	decodeAmenities(&h, amenities)
	return &h, nil
}

func collectHotels(rows *sql.Rows) ([]model.Hotel, error) {
	out := []model.Hotel{}
	for rows.Next() {
		var h model.Hotel
		var amenities string
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Address, &h.City, &h.Country,
			&h.Stars, &h.Latitude, &h.Longitude, &amenities, &h.ThumbnailURL, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		decodeAmenities(&h, amenities)
		out = append(out, h)
	}
	return out, rows.Err()
}

func decodeAmenities(h *model.Hotel, raw string) {
	h.Amenities = []string{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	// Bad JSON in the column degrades to an empty list rather than failing the read.
	_ = json.Unmarshal([]byte(raw), &h.Amenities)
}
