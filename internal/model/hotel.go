package model

import "time"

// Hotel represents a property listed on the platform.  Hotels are owned by
// a user with the OWNER role and carry the descriptive attributes shown on
// the search page.  Amenities are stored as a JSON array in a TEXT column
// and unmarshalled by the repository.
//
// Fields:
//
//	ID           - UUID primary key.
//	OwnerID      - user that manages this hotel.
//	Name         - display name.
//	Address      - street address.
//	City         - city used as a search facet.
//	Country      - country used as a search facet.
//	Stars        - star rating 1..5.
//	Latitude     - WGS84 latitude, 0 when unknown.
//	Longitude    - WGS84 longitude, 0 when unknown.
//	Amenities    - amenity tags such as "wifi" or "pool".
//	ThumbnailURL - cover image URL.
//	CreatedAt    - creation timestamp.
//	UpdatedAt    - last update timestamp.
type Hotel struct {
	ID           string    `json:"id"`            // hotels.id (UUID)
	OwnerID      uint64    `json:"-"`             // hotels.owner_id
	Name         string    `json:"name"`          // hotels.name
	Address      string    `json:"address"`       // hotels.address
	City         string    `json:"city"`          // hotels.city
	Country      string    `json:"country"`       // hotels.country
	Stars        uint8     `json:"stars"`         // hotels.stars
	Latitude     float64   `json:"latitude"`      // hotels.latitude
	Longitude    float64   `json:"longitude"`     // hotels.longitude
	Amenities    []string  `json:"amenities"`     // hotels.amenities (JSON array)
	ThumbnailURL string    `json:"thumbnail_url"` // hotels.thumbnail_url
	CreatedAt    time.Time `json:"created_at"`    // hotels.created_at
	UpdatedAt    time.Time `json:"updated_at"`    // hotels.updated_at
}
