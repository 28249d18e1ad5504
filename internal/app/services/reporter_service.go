package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/markdown"
)

// ReporterService defines the interface for the resident reporter program:
// authenticated residents submit Markdown articles, admins approve them, and
// only approved articles reach the public site.
type ReporterService interface {
	// GetArticles lists articles. Public callers see approved only; admins
	// pass an empty status or "pending" to review the queue.
	GetArticles(ctx context.Context, status models.ReporterStatus, page, size int) ([]*models.ReporterArticle, int64, error)
	// GetArticleByID retrieves one article with rendered HTML. With
	// approvedOnly set, pending articles read as not found.
	GetArticleByID(ctx context.Context, id int64, approvedOnly bool) (*models.ReporterArticle, error)
	Submit(ctx context.Context, userID int64, userName string, req *dto.ReporterSubmitRequest) (*models.ReporterArticle, error)
	Approve(ctx context.Context, id int64) error
	DeleteArticle(ctx context.Context, id int64) error

	LikeArticle(ctx context.Context, id int64) (int, error)
	GetComments(ctx context.Context, articleID int64) ([]*models.ReporterComment, error)
	AddComment(ctx context.Context, articleID, userID int64, req *dto.ReporterCommentRequest) (*models.ReporterComment, error)
	DeleteComment(ctx context.Context, articleID, commentID int64) error
}

type reporterServiceImpl struct {
	reporterRepo *repositories.ReporterRepository
	renderer     *markdown.Renderer
	logger       zerolog.Logger
}

// NewReporterService creates a new reporter service instance
func NewReporterService(reporterRepo *repositories.ReporterRepository, renderer *markdown.Renderer, logger zerolog.Logger) ReporterService {
	return &reporterServiceImpl{
		reporterRepo: reporterRepo,
		renderer:     renderer,
		logger:       logger,
	}
}

// render fills ContentHTML from the stored Markdown.
func (s *reporterServiceImpl) render(article *models.ReporterArticle) {
	html, err := s.renderer.Render(article.Content)
	if err != nil {
		s.logger.Warn().Err(err).Int64("articleID", article.ID).Msg("Failed to render article markdown")
		return
	}
	article.ContentHTML = html
}

// GetArticles lists reporter articles with rendered HTML
func (s *reporterServiceImpl) GetArticles(ctx context.Context, status models.ReporterStatus, page, size int) ([]*models.ReporterArticle, int64, error) {
	if status != "" && status != models.ReporterPending && status != models.ReporterApproved {
		return nil, 0, fmt.Errorf("%w: unknown reporter status %q", apperrors.ErrValidationFailed, status)
	}

	offset, limit := calculateOffsetLimit(page, size)

	articles, err := s.reporterRepo.GetArticles(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing reporter articles: %w", err)
	}

	total, err := s.reporterRepo.CountArticles(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting reporter articles: %w", err)
	}

	for _, article := range articles {
		s.render(article)
	}

	return articles, total, nil
}

// GetArticleByID retrieves one article with rendered HTML
func (s *reporterServiceImpl) GetArticleByID(ctx context.Context, id int64, approvedOnly bool) (*models.ReporterArticle, error) {
	article, err := s.reporterRepo.GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReporterArticleNotFound) {
			return nil, apperrors.ErrReporterNotFound
		}
		return nil, fmt.Errorf("error getting reporter article: %w", err)
	}

	if approvedOnly && article.Status != models.ReporterApproved {
		return nil, apperrors.ErrReporterNotFound
	}

	s.render(article)
	return article, nil
}

// Submit stores a new pending article for the authenticated resident
func (s *reporterServiceImpl) Submit(ctx context.Context, userID int64, userName string, req *dto.ReporterSubmitRequest) (*models.ReporterArticle, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	article := &models.ReporterArticle{
		Title:      title,
		Content:    req.Content,
		AuthorID:   &userID,
		AuthorName: userName,
		ImageURL:   req.ImageURL,
		Status:     models.ReporterPending,
	}

	id, err := s.reporterRepo.CreateArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("error creating reporter article: %w", err)
	}

	s.logger.Info().Int64("articleID", id).Int64("userID", userID).Msg("Reporter article submitted")
	return s.GetArticleByID(ctx, id, false)
}

// Approve moves a pending article to approved
func (s *reporterServiceImpl) Approve(ctx context.Context, id int64) error {
	article, err := s.GetArticleByID(ctx, id, false)
	if err != nil {
		return err
	}

	if article.Status == models.ReporterApproved {
		return apperrors.ErrReporterAlreadyApproved
	}

	if err := s.reporterRepo.UpdateStatus(ctx, id, models.ReporterApproved); err != nil {
		if errors.Is(err, repositories.ErrReporterArticleNotFound) {
			return apperrors.ErrReporterNotFound
		}
		return fmt.Errorf("error approving reporter article: %w", err)
	}

	s.logger.Info().Int64("articleID", id).Msg("Reporter article approved")
	return nil
}

// DeleteArticle removes an article and its comments
func (s *reporterServiceImpl) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.reporterRepo.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrReporterArticleNotFound) {
			return apperrors.ErrReporterNotFound
		}
		return fmt.Errorf("error deleting reporter article: %w", err)
	}
	return nil
}

// LikeArticle increments the like counter of an approved article
func (s *reporterServiceImpl) LikeArticle(ctx context.Context, id int64) (int, error) {
	if _, err := s.GetArticleByID(ctx, id, true); err != nil {
		return 0, err
	}

	likes, err := s.reporterRepo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReporterArticleNotFound) {
			return 0, apperrors.ErrReporterNotFound
		}
		return 0, fmt.Errorf("error liking reporter article: %w", err)
	}
	return likes, nil
}

// GetComments lists the comments on an approved article
func (s *reporterServiceImpl) GetComments(ctx context.Context, articleID int64) ([]*models.ReporterComment, error) {
	if _, err := s.GetArticleByID(ctx, articleID, true); err != nil {
		return nil, err
	}

	comments, err := s.reporterRepo.GetComments(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("error listing reporter comments: %w", err)
	}
	return comments, nil
}

// AddComment attaches an authenticated comment to an approved article
func (s *reporterServiceImpl) AddComment(ctx context.Context, articleID, userID int64, req *dto.ReporterCommentRequest) (*models.ReporterComment, error) {
	if _, err := s.GetArticleByID(ctx, articleID, true); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", apperrors.ErrValidationFailed)
	}

	comment := &models.ReporterComment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   content,
	}

	id, err := s.reporterRepo.CreateComment(ctx, comment)
	if err != nil {
		if errors.Is(err, repositories.ErrReporterArticleNotFound) {
			return nil, apperrors.ErrReporterNotFound
		}
		return nil, fmt.Errorf("error creating reporter comment: %w", err)
	}
	comment.ID = id

	return comment, nil
}

// DeleteComment removes a comment from an article
func (s *reporterServiceImpl) DeleteComment(ctx context.Context, articleID, commentID int64) error {
	if err := s.reporterRepo.DeleteComment(ctx, articleID, commentID); err != nil {
		if errors.Is(err, repositories.ErrReporterCommentNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("error deleting reporter comment: %w", err)
	}
	return nil
}
