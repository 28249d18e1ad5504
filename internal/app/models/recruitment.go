package models

import "time"

// HousingRecruitment defines a move-in recruitment notice based on the
// 'housing_recruitments' table. Unpublished notices are admin-only.
type HousingRecruitment struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Title     string    `json:"title" db:"title" example:"안암생활 입주자 모집공고"`
	Content   string    `json:"content" db:"content"`
	FileURL   *string   `json:"fileUrl,omitempty" db:"file_url"`
	Published bool      `json:"published" db:"published" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
