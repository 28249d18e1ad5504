package models

import "time"

// Partner defines a partner organization shown in the footer/partner strip,
// based on the 'partners' table. DisplayOrder controls render order and
// carries no uniqueness constraint.
type Partner struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" example:"LH 한국토지주택공사"`
	LogoURL      string    `json:"logoUrl" db:"logo_url"`
	Category     string    `json:"category" db:"category" example:"public"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// HistoryMilestone is one row of the company history timeline.
type HistoryMilestone struct {
	ID           int64     `json:"id" db:"id"`
	Year         int       `json:"year" db:"year" example:"2020"`
	Month        *int      `json:"month,omitempty" db:"month" example:"11"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Link         *string   `json:"link,omitempty" db:"link"`
	IsHighlight  bool      `json:"isHighlight" db:"is_highlight"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// SocialAccount is a linked company social media account.
type SocialAccount struct {
	ID              int64          `json:"id" db:"id"`
	Name            string         `json:"name" db:"name"`
	Platform        SocialPlatform `json:"platform" db:"platform" example:"instagram"`
	Username        string         `json:"username" db:"username"`
	ProfileURL      string         `json:"profileUrl" db:"profile_url"`
	ProfileImageURL *string        `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	IsActive        bool           `json:"isActive" db:"is_active"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
}
