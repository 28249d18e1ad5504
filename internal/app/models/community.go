package models

import "time"

// CommunityPost defines a social-feed post based on the 'community_posts'
// table. Posts are sourced from the company's social accounts; likes and
// comment counts are engagement counters with no per-user dedup.
type CommunityPost struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	ImageURL     string    `json:"imageUrl" db:"image_url"`
	Caption      string    `json:"caption" db:"caption"`
	Hashtags     []string  `json:"hashtags" db:"hashtags" example:"일상,공유주택"`
	Location     *string   `json:"location,omitempty" db:"location"`
	Likes        int       `json:"likes" db:"likes" example:"42"`
	CommentCount int       `json:"commentCount" db:"comment_count" example:"3"`
	SourceURL    *string   `json:"sourceUrl,omitempty" db:"source_url"`
	PostedAt     time.Time `json:"postedAt" db:"posted_at"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// PostComment is an anonymous nickname comment on a community post.
type PostComment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	Nickname  string    `json:"nickname" db:"nickname"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
