package models

import "time"

// LandingMedia is an item shown on the public landing page.
// Field names follow the wire format the front end consumes.
type LandingMedia struct {
	ID          string    `json:"id"`
	Tipe        string    `json:"tipe"`
	Judul       string    `json:"judul"`
	URL         string    `json:"url"`
	AspectRatio string    `json:"aspectRatio"`
	Urutan      int       `json:"urutan"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublicLandingMedia is the projection exposed to unauthenticated
// clients. Administrative fields never appear here.
type PublicLandingMedia struct {
	ID          string `json:"id"`
	Tipe        string `json:"tipe"`
	Judul       string `json:"judul"`
	URL         string `json:"url"`
	AspectRatio string `json:"aspectRatio"`
	Urutan      int    `json:"urutan"`
}
