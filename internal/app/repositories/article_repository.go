package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// ErrArticleNotFound is returned when an article row is missing.
var ErrArticleNotFound = ErrNotFound

// ArticleFilter narrows article list queries.
type ArticleFilter struct {
	Category models.ArticleCategory
	Featured *bool
}

// ArticleRepository handles insight article database operations
type ArticleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const articleColumns = "id, title, excerpt, content, author, category, featured, image_url, file_url, source_url, published_at, created_at"

func scanArticle(row pgx.Row) (*models.Article, error) {
	article := &models.Article{}
	err := row.Scan(
		&article.ID, &article.Title, &article.Excerpt, &article.Content,
		&article.Author, &article.Category, &article.Featured,
		&article.ImageURL, &article.FileURL, &article.SourceURL,
		&article.PublishedAt, &article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return article, nil
}

// CreateArticle inserts a new article and returns its id
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *models.Article) (int64, error) {
	sql, args, err := r.sb.Insert("articles").
		Columns("title", "excerpt", "content", "author", "category", "featured", "image_url", "file_url", "source_url", "published_at").
		Values(article.Title, article.Excerpt, article.Content, article.Author, article.Category, article.Featured, article.ImageURL, article.FileURL, article.SourceURL, article.PublishedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create article query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("title", article.Title).Msg("Error executing create article query")
		return 0, fmt.Errorf("error creating article: %w", err)
	}

	return id, nil
}

// GetArticleByID retrieves an article by id
func (r *ArticleRepository) GetArticleByID(ctx context.Context, id int64) (*models.Article, error) {
	sql, args, err := r.sb.Select(articleColumns).
		From("articles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get article query: %w", err)
	}

	article, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		logger.Error().Err(err).Int64("articleID", id).Msg("Error scanning article row")
		return nil, fmt.Errorf("error getting article by ID: %w", err)
	}

	return article, nil
}

func (r *ArticleRepository) applyFilter(builder squirrel.SelectBuilder, filter ArticleFilter) squirrel.SelectBuilder {
	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Featured != nil {
		builder = builder.Where(squirrel.Eq{"featured": *filter.Featured})
	}
	return builder
}

// GetArticles retrieves a page of articles, newest publication first
func (r *ArticleRepository) GetArticles(ctx context.Context, filter ArticleFilter, offset uint64, limit int) ([]*models.Article, error) {
	builder := r.applyFilter(
		r.sb.Select(articleColumns).From("articles"), filter).
		OrderBy("published_at DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get articles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get articles query")
		return nil, fmt.Errorf("error querying articles: %w", err)
	}
	defer rows.Close()

	articles := []*models.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning article row during list")
			return nil, fmt.Errorf("error scanning article row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

// CountArticles counts articles matching the filter
func (r *ArticleRepository) CountArticles(ctx context.Context, filter ArticleFilter) (int64, error) {
	builder := r.applyFilter(r.sb.Select("COUNT(*)").From("articles"), filter)

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count articles query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting articles")
		return 0, fmt.Errorf("error counting articles: %w", err)
	}

	return count, nil
}

// UpdateArticle updates an existing article in place
func (r *ArticleRepository) UpdateArticle(ctx context.Context, article *models.Article) error {
	sql, args, err := r.sb.Update("articles").
		SetMap(map[string]interface{}{
			"title":        article.Title,
			"excerpt":      article.Excerpt,
			"content":      article.Content,
			"author":       article.Author,
			"category":     article.Category,
			"featured":     article.Featured,
			"image_url":    article.ImageURL,
			"file_url":     article.FileURL,
			"source_url":   article.SourceURL,
			"published_at": article.PublishedAt,
		}).
		Where(squirrel.Eq{"id": article.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update article query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("articleID", article.ID).Msg("Error executing update article query")
		return fmt.Errorf("error updating article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// DeleteArticle deletes an article by id
func (r *ArticleRepository) DeleteArticle(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("articles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete article query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("articleID", id).Msg("Error executing delete article query")
		return fmt.Errorf("error deleting article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrArticleNotFound
	}

	return nil
}
