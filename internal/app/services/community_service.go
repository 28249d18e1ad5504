package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// CommunityService defines the interface for community post operations,
// including anonymous engagement (likes and nickname comments).
type CommunityService interface {
	GetPosts(ctx context.Context, page, size int) ([]*models.CommunityPost, int64, error)
	GetPostByID(ctx context.Context, id int64) (*models.CommunityPost, error)
	CreatePost(ctx context.Context, post *models.CommunityPost) (*models.CommunityPost, error)
	UpdatePost(ctx context.Context, post *models.CommunityPost) (*models.CommunityPost, error)
	DeletePost(ctx context.Context, id int64) error

	// LikePost bumps the like counter and returns the new value. Likes are
	// anonymous and unbounded; there is no per-user dedup.
	LikePost(ctx context.Context, id int64) (int, error)
	GetComments(ctx context.Context, postID int64) ([]*models.PostComment, error)
	AddComment(ctx context.Context, postID int64, req *dto.PostCommentRequest) (*models.PostComment, error)
	DeleteComment(ctx context.Context, postID, commentID int64) error
}

type communityServiceImpl struct {
	communityRepo *repositories.CommunityRepository
}

// NewCommunityService creates a new community service instance
func NewCommunityService(communityRepo *repositories.CommunityRepository) CommunityService {
	return &communityServiceImpl{communityRepo: communityRepo}
}

func (s *communityServiceImpl) validatePost(post *models.CommunityPost) error {
	if strings.TrimSpace(post.ImageURL) == "" {
		return fmt.Errorf("%w: image URL cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetPosts lists community posts
func (s *communityServiceImpl) GetPosts(ctx context.Context, page, size int) ([]*models.CommunityPost, int64, error) {
	offset, limit := calculateOffsetLimit(page, size)

	posts, err := s.communityRepo.GetPosts(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing posts: %w", err)
	}

	total, err := s.communityRepo.CountPosts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	return posts, total, nil
}

// GetPostByID retrieves one post
func (s *communityServiceImpl) GetPostByID(ctx context.Context, id int64) (*models.CommunityPost, error) {
	post, err := s.communityRepo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	return post, nil
}

// CreatePost stores a new post
func (s *communityServiceImpl) CreatePost(ctx context.Context, post *models.CommunityPost) (*models.CommunityPost, error) {
	if err := s.validatePost(post); err != nil {
		return nil, err
	}

	id, err := s.communityRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return s.GetPostByID(ctx, id)
}

// UpdatePost replaces an existing post
func (s *communityServiceImpl) UpdatePost(ctx context.Context, post *models.CommunityPost) (*models.CommunityPost, error) {
	if err := s.validatePost(post); err != nil {
		return nil, err
	}

	if err := s.communityRepo.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return s.GetPostByID(ctx, post.ID)
}

// DeletePost removes a post and its comments
func (s *communityServiceImpl) DeletePost(ctx context.Context, id int64) error {
	if err := s.communityRepo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}

// LikePost increments the like counter
func (s *communityServiceImpl) LikePost(ctx context.Context, id int64) (int, error) {
	likes, err := s.communityRepo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return 0, apperrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("error liking post: %w", err)
	}
	return likes, nil
}

// GetComments lists a post's comments oldest first
func (s *communityServiceImpl) GetComments(ctx context.Context, postID int64) ([]*models.PostComment, error) {
	// Surface a not-found for the post itself rather than an empty list.
	if _, err := s.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.communityRepo.GetComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	return comments, nil
}

// AddComment attaches an anonymous nickname comment to a post
func (s *communityServiceImpl) AddComment(ctx context.Context, postID int64, req *dto.PostCommentRequest) (*models.PostComment, error) {
	comment := &models.PostComment{
		PostID:   postID,
		Nickname: strings.TrimSpace(req.Nickname),
		Content:  strings.TrimSpace(req.Content),
	}

	if comment.Nickname == "" || comment.Content == "" {
		return nil, fmt.Errorf("%w: nickname and content are required", apperrors.ErrValidationFailed)
	}

	id, err := s.communityRepo.CreateComment(ctx, comment)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	comment.ID = id

	return comment, nil
}

// DeleteComment removes a comment from a post
func (s *communityServiceImpl) DeleteComment(ctx context.Context, postID, commentID int64) error {
	if err := s.communityRepo.DeleteComment(ctx, postID, commentID); err != nil {
		if errors.Is(err, repositories.ErrPostCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("error deleting comment: %w", err)
	}
	return nil
}
