package domain

import "time"

// District is an administrative region tracked for MGNREGA performance.
// The code column is the immutable business key used to resolve incoming
// feed records; districts are seeded out-of-band and never created by the
// sync pipeline.
type District struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	State      string    `json:"state"`
	Population *int64    `json:"population"`
	Lat        *float64  `json:"lat,omitempty"`
	Lon        *float64  `json:"lon,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DistrictFilters narrows district listings. Name matches case-insensitive
// substring, state and code match case-insensitive exact.
type DistrictFilters struct {
	Name  string
	State string
	Code  string
}
