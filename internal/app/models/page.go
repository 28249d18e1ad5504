package models

import (
	"encoding/json"
	"time"
)

// MaxImagesPerSlot caps ordered multi-image slots such as the hero carousel.
const MaxImagesPerSlot = 5

// PageImage binds an uploaded image URL to a named slot on a page, based on
// the 'page_images' table. A (pageKey, imageKey) slot may hold a single image
// or an ordered set of up to MaxImagesPerSlot.
type PageImage struct {
	ID           int64     `json:"id" db:"id"`
	PageKey      string    `json:"pageKey" db:"page_key" example:"home"`
	ImageKey     string    `json:"imageKey" db:"image_key" example:"hero"`
	ImageURL     string    `json:"imageUrl" db:"image_url"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// SiteSetting is a structured configuration blob keyed by name (stats,
// footer, CEO message). The value shape is owned by the client; the server
// stores it opaquely as JSONB.
type SiteSetting struct {
	Key       string          `json:"key" db:"key" example:"footer"`
	Value     json.RawMessage `json:"value" db:"value"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}
