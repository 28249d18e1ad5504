package models

import "time"

// Event defines a public event based on the 'events' table
type Event struct {
	ID              int64       `json:"id" db:"id" example:"1"`
	Title           string      `json:"title" db:"title" example:"오픈행사"`
	Date            time.Time   `json:"date" db:"date" example:"2026-01-10T10:00:00Z"`
	Location        string      `json:"location" db:"location" example:"안암생활 커뮤니티홀"`
	Status          EventStatus `json:"status" db:"status" example:"upcoming"`
	ImageURL        *string     `json:"imageUrl,omitempty" db:"image_url"`
	RegistrationURL *string     `json:"registrationUrl,omitempty" db:"registration_url"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}
