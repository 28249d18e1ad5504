package models

import "time"

// RelatedArticle is an external press link attached to a project.
type RelatedArticle struct {
	Title string `json:"title" example:"세대를 잇는 공유주택"`
	URL   string `json:"url" example:"https://news.example.com/article/123"`
}

// Project defines a housing project shown on the public site, based on the
// 'projects' table. Categories is multi-valued; related articles and partner
// logos are stored as JSONB.
type Project struct {
	ID              int64            `json:"id" db:"id" example:"1"`
	Title           string           `json:"title" db:"title" example:"안암생활"`
	Categories      []string         `json:"categories" db:"categories" example:"청년주택,공유주택"`
	Location        string           `json:"location" db:"location" example:"서울 성북구"`
	Year            int              `json:"year" db:"year" example:"2020"`
	Units           int              `json:"units" db:"units" example:"122"`
	Description     string           `json:"description" db:"description"` // Sanitized HTML
	PDFURL          *string          `json:"pdfUrl,omitempty" db:"pdf_url"`
	RelatedArticles []RelatedArticle `json:"relatedArticles" db:"related_articles"`
	PartnerLogos    []string         `json:"partnerLogos" db:"partner_logos"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
}
