package models

import "time"

// ReporterArticle defines a user-submitted resident reporter article based on
// the 'reporter_articles' table. Content is Markdown; ContentHTML carries the
// sanitized rendering and is computed, never stored.
type ReporterArticle struct {
	ID          int64          `json:"id" db:"id" example:"1"`
	Title       string         `json:"title" db:"title"`
	Content     string         `json:"content" db:"content"`
	ContentHTML string         `json:"contentHtml,omitempty" db:"-"`
	AuthorID    *int64         `json:"authorId,omitempty" db:"author_id"`
	AuthorName  string         `json:"authorName" db:"author_name"`
	ImageURL    *string        `json:"imageUrl,omitempty" db:"image_url"`
	Status      ReporterStatus `json:"status" db:"status" example:"pending"`
	Likes       int            `json:"likes" db:"likes"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

// ReporterComment is a comment on a reporter article. Unlike community post
// comments these require an authenticated user.
type ReporterComment struct {
	ID        int64     `json:"id" db:"id"`
	ArticleID int64     `json:"articleId" db:"article_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	UserName  string    `json:"userName" db:"user_name"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
