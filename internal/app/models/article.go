package models

import "time"

// Article defines an insight/resource article based on the 'articles' table.
// Content is HTML and is sanitized before it is stored.
type Article struct {
	ID          int64           `json:"id" db:"id" example:"1"`
	Title       string          `json:"title" db:"title"`
	Excerpt     string          `json:"excerpt" db:"excerpt"`
	Content     string          `json:"content" db:"content"`
	Author      string          `json:"author" db:"author"`
	Category    ArticleCategory `json:"category" db:"category" example:"column"`
	Featured    bool            `json:"featured" db:"featured"`
	ImageURL    *string         `json:"imageUrl,omitempty" db:"image_url"`
	FileURL     *string         `json:"fileUrl,omitempty" db:"file_url"`
	SourceURL   *string         `json:"sourceUrl,omitempty" db:"source_url"`
	PublishedAt time.Time       `json:"publishedAt" db:"published_at"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}
