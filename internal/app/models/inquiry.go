package models

import "time"

// Inquiry is a write-once contact-form submission based on the 'inquiries'
// table. Inquiries are never updated; admins read and delete them.
type Inquiry struct {
	ID        int64       `json:"id" db:"id"`
	Type      InquiryType `json:"type" db:"type" example:"move-in"`
	Name      string      `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	Phone     string      `json:"phone" db:"phone"`
	Company   *string     `json:"company,omitempty" db:"company"`
	Message   string      `json:"message" db:"message"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}
