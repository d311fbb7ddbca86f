package entity

import "time"

// MediaVariant is a named, resized derivative of an uploaded image.
type MediaVariant struct {
	Path   string `json:"path"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

type Media struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
	Width    *int   `json:"width"`
	Height   *int   `json:"height"`
	AltText  string `json:"alt_text"`
	Caption  string `json:"caption"`
	IsActive bool   `json:"is_active"`

	// Named variants keyed by size name (original, thumbnail, ...).
	// Empty for non-image uploads.
	Sizes map[string]MediaVariant `json:"sizes_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
