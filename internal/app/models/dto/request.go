package dto

import "encoding/json"

// PostCommentRequest is an anonymous comment on a community post.
type PostCommentRequest struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=30"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

// ReporterCommentRequest is a comment on a reporter article; the author
// comes from the authenticated user, not the payload.
type ReporterCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// ReporterSubmitRequest is a resident reporter article submission.
// Content is Markdown.
type ReporterSubmitRequest struct {
	Title    string  `json:"title" binding:"required,min=2,max=200"`
	Content  string  `json:"content" binding:"required,min=10"`
	ImageURL *string `json:"imageUrl,omitempty" binding:"omitempty,url"`
}

// InquiryRequest is a public contact-form submission.
type InquiryRequest struct {
	Type    string  `json:"type" binding:"required,oneof=move-in business recruit"`
	Name    string  `json:"name" binding:"required,min=2,max=50"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone" binding:"required,min=7,max=20"`
	Company *string `json:"company,omitempty" binding:"omitempty,max=100"`
	Message string  `json:"message" binding:"required,min=5,max=4000"`
}

// ApplicationRequest applies for a resident program.
type ApplicationRequest struct {
	ProgramID int64   `json:"programId" binding:"required,min=1"`
	Name      string  `json:"name" binding:"required,min=2,max=50"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone" binding:"required,min=7,max=20"`
	Message   *string `json:"message,omitempty" binding:"omitempty,max=2000"`
}

// PageImageRequest binds an uploaded URL to a page slot.
type PageImageRequest struct {
	PageKey      string `json:"pageKey" binding:"required,min=1,max=50"`
	ImageKey     string `json:"imageKey" binding:"required,min=1,max=50"`
	ImageURL     string `json:"imageUrl" binding:"required,url"`
	DisplayOrder int    `json:"displayOrder" binding:"min=0"`
}

// ReorderRequest rewrites the ordering of a whole image slot.
type ReorderRequest struct {
	ImageKey   string  `json:"imageKey" binding:"required,min=1,max=50"`
	OrderedIDs []int64 `json:"orderedIds" binding:"required,min=1,dive,min=1"`
}

// DisplayOrderRequest reorders an item within its collection.
type DisplayOrderRequest struct {
	DisplayOrder int `json:"displayOrder" binding:"min=0"`
}

// SettingRequest replaces a site-configuration blob. The value shape is
// owned by the client and stored opaquely.
type SettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}
