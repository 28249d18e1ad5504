package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/markdown"
)

// ArticleService defines the interface for insight article operations
type ArticleService interface {
	GetArticles(ctx context.Context, category models.ArticleCategory, featured *bool, page, size int) ([]*models.Article, int64, error)
	GetArticleByID(ctx context.Context, id int64) (*models.Article, error)
	CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

type articleServiceImpl struct {
	articleRepo *repositories.ArticleRepository
	renderer    *markdown.Renderer
}

// NewArticleService creates a new article service instance
func NewArticleService(articleRepo *repositories.ArticleRepository, renderer *markdown.Renderer) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		renderer:    renderer,
	}
}

func validateArticleCategory(category models.ArticleCategory) error {
	switch category {
	case models.ArticleColumn, models.ArticleMedia, models.ArticleLibrary:
		return nil
	default:
		return fmt.Errorf("%w: unknown article category %q", apperrors.ErrValidationFailed, category)
	}
}

// validateArticle checks required fields and scrubs the HTML body. Content
// arrives as HTML from the admin editor and is sanitized on every write.
func (s *articleServiceImpl) validateArticle(article *models.Article) error {
	if strings.TrimSpace(article.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateArticleCategory(article.Category); err != nil {
		return err
	}

	article.Content = s.renderer.SanitizeHTML(article.Content)
	return nil
}

// GetArticles lists articles filtered by category and featured flag
func (s *articleServiceImpl) GetArticles(ctx context.Context, category models.ArticleCategory, featured *bool, page, size int) ([]*models.Article, int64, error) {
	if category != "" {
		if err := validateArticleCategory(category); err != nil {
			return nil, 0, err
		}
	}

	filter := repositories.ArticleFilter{Category: category, Featured: featured}
	offset, limit := calculateOffsetLimit(page, size)

	articles, err := s.articleRepo.GetArticles(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing articles: %w", err)
	}

	total, err := s.articleRepo.CountArticles(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting articles: %w", err)
	}

	return articles, total, nil
}

// GetArticleByID retrieves one article
func (s *articleServiceImpl) GetArticleByID(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articleRepo.GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("error getting article: %w", err)
	}
	return article, nil
}

// CreateArticle stores a new article
func (s *articleServiceImpl) CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	if err := s.validateArticle(article); err != nil {
		return nil, err
	}

	id, err := s.articleRepo.CreateArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("error creating article: %w", err)
	}

	return s.GetArticleByID(ctx, id)
}

// UpdateArticle replaces an existing article
func (s *articleServiceImpl) UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	if err := s.validateArticle(article); err != nil {
		return nil, err
	}

	if err := s.articleRepo.UpdateArticle(ctx, article); err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("error updating article: %w", err)
	}

	return s.GetArticleByID(ctx, article.ID)
}

// DeleteArticle removes an article
func (s *articleServiceImpl) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.articleRepo.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return fmt.Errorf("error deleting article: %w", err)
	}
	return nil
}
